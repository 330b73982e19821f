package validator_test

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/validator"
)

type contactForm struct {
	Name  string `validate:"notblank"`
	Email string `validate:"notblank"`
	Price int    `validate:"gte=0"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	t.Run("Should accept filled fields", func(t *testing.T) {
		assert.NoError(t, v.Validate(contactForm{Name: "Ayşe", Email: "a@b.c", Price: 0}))
	})

	t.Run("Should reject whitespace only fields", func(t *testing.T) {
		err := v.Validate(contactForm{Name: "   ", Email: "a@b.c"})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		var fieldErrs govalidator.ValidationErrors
		require.True(t, errors.As(err, &fieldErrs))
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "Name", fieldErrs[0].Field())
		assert.Equal(t, "field is required", validator.ValidationErrorMessage(fieldErrs[0]))
	})

	t.Run("Should reject negative numbers", func(t *testing.T) {
		err := v.Validate(contactForm{Name: "a", Email: "b", Price: -1})
		require.Error(t, err)

		var fieldErrs govalidator.ValidationErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, "must be greater than or equal to 0", validator.ValidationErrorMessage(fieldErrs[0]))
	})
}
