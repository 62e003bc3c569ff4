package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceName        string    `gorm:"type:varchar(255)"`
	ServiceImage       string    `gorm:"type:text"`
	UserName           string    `gorm:"type:varchar(255)"`
	UserEmail          string    `gorm:"type:varchar(320);index"`
	UserPhoto          string    `gorm:"type:text"`
	Price              float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Area               string    `gorm:"type:varchar(255)"`
	ServiceDescription string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
