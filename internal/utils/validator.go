package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
)

// Validator wraps go-playground/validator with the custom rules this service
// needs.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	RegisterCustomValidators(v)
	return &Validator{validate: v}
}

// Validate checks a request struct against its validate tags.
func (v *Validator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ValidateActivityType is the "activity_type" tag: the value must be one of
// the supported activity-type tags.
func ValidateActivityType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, t := range models.ActivityTypes() {
		if string(t) == value {
			return true
		}
	}
	return false
}

// ValidateDifficultyLevel is the "difficulty_level" tag.
func ValidateDifficultyLevel(fl validator.FieldLevel) bool {
	validLevels := []models.DifficultyLevel{
		models.DifficultyEasy,
		models.DifficultyMedium,
		models.DifficultyHard,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

// RegisterCustomValidators registers all custom validators.
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("activity_type", ValidateActivityType)
	validate.RegisterValidation("difficulty_level", ValidateDifficultyLevel)

	// Report field names from json tags so error messages match the wire
	// format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
