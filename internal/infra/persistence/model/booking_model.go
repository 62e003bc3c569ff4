package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel is the GORM-specific struct for the 'bookings' table.
type BookingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID     string    `gorm:"type:varchar(64);index"`
	ServiceName   string    `gorm:"type:varchar(255)"`
	ServiceImage  string    `gorm:"type:text"`
	ProviderName  string    `gorm:"type:varchar(255)"`
	ProviderEmail string    `gorm:"type:varchar(320);index"`
	UserName      string    `gorm:"type:varchar(255)"`
	UserEmail     string    `gorm:"type:varchar(320);index"`
	Date          string    `gorm:"type:varchar(64)"`
	Instruction   string    `gorm:"type:text"`
	Price         float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Status        string    `gorm:"type:varchar(32);not null;default:'pending'"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
