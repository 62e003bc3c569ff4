package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "services_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "service_name" (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("syntax error")))
}

func TestServiceMapping_KeepsEveryField(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	svc := &entity.Service{
		ID:                 uuid.New(),
		ServiceName:        "Tutoring",
		ServiceImage:       "https://img.example/t.png",
		UserName:           "U",
		UserEmail:          "u@test.com",
		UserPhoto:          "https://img.example/u.png",
		Price:              entity.Price(12.5),
		Area:               "Chattogram",
		ServiceDescription: "Maths",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	assert.Equal(t, svc, toServiceDomain(fromServiceDomain(svc)))
	assert.Nil(t, toServiceDomain(nil))
	assert.Nil(t, fromServiceDomain(nil))
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Storage.SlowQueryThreshold = time.Millisecond

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM services", 3
	}, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "component=gorm")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM services WHERE id = 1", 0
	}, gorm.ErrRecordNotFound)

	assert.Zero(t, buf.Len())
}

// newDryRunDB builds statements without a server and logs each one to buf.
func newDryRunDB(t *testing.T, buf *bytes.Buffer) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = true

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=servicehub dbname=servicehub sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               newGormSlogLogger(slog.New(slog.NewTextHandler(buf, nil)), cfg),
	})
	require.NoError(t, err)

	return db
}

func TestServiceRepository_LockServiceByID(t *testing.T) {
	var buf bytes.Buffer
	repo := NewServiceRepository(newDryRunDB(t, &buf))
	id := uuid.New()

	_, err := repo.LockServiceByID(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "FOR UPDATE")
	assert.Contains(t, buf.String(), id.String())

	buf.Reset()
	_, err = repo.FindServiceByID(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "GORM query")
	assert.NotContains(t, buf.String(), "FOR UPDATE")
}
