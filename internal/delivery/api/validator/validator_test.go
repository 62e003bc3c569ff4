package validator

import (
	"testing"

	domainerrors "servicehub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type limitQuery struct {
	Limit *int `validate:"omitempty,min=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()
	zero, negative := 0, -1

	assert.NoError(t, cv.Validate(&limitQuery{}))
	assert.NoError(t, cv.Validate(&limitQuery{Limit: &zero}))
	assert.ErrorIs(t, cv.Validate(&limitQuery{Limit: &negative}), domainerrors.ErrValidationFailed)
}
