package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRequest struct {
	ActivityID string  `validate:"required"`
	Score      float64 `validate:"min=0,max=100"`
}

func TestToValidationErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(exportRequest{Score: 150})
	require.Error(t, err)

	verrs := ToValidationErrors(err)
	require.Len(t, verrs, 2)

	byField := map[string]ValidationError{}
	for _, e := range verrs {
		byField[e.Field] = e
	}

	assert.Equal(t, "is required", byField["ActivityID"].Message)
	assert.Equal(t, "required", byField["ActivityID"].Rule)
	assert.Equal(t, "must be at most 100", byField["Score"].Message)
}

func TestToValidationErrors_NotAValidatorError(t *testing.T) {
	assert.Nil(t, ToValidationErrors(assert.AnError))
}

func TestValidationErrorsError(t *testing.T) {
	assert.Equal(t, "validation failed", ValidationErrors{}.Error())

	one := ValidationErrors{{Field: "activity_id", Message: "is required"}}
	assert.Equal(t, "validation failed: activity_id is required", one.Error())

	two := ValidationErrors{{Field: "a"}, {Field: "b"}}
	assert.Equal(t, "validation failed: 2 field errors", two.Error())
}
