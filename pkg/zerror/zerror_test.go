package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")

	t.Run("Should keep identity after wrapping a parent", func(t *testing.T) {
		parent := errors.New("no rows")
		err := fmt.Errorf("get product: %w", notFound.WrapParent(parent))

		assert.ErrorIs(t, err, notFound)
		assert.ErrorIs(t, err, parent)
	})

	t.Run("Should expose status and code through errors.As", func(t *testing.T) {
		err := fmt.Errorf("service: %w", notFound)

		var zErr zerror.ZError
		assert.True(t, errors.As(err, &zErr))
		assert.Equal(t, zerror.StatusNotFound, zErr.Status())
		assert.Equal(t, "PRODUCT_NOT_FOUND", zErr.Code())
		assert.Equal(t, "product not found", zErr.Msg())
	})

	t.Run("Should not match a different code", func(t *testing.T) {
		other := zerror.NewValidationFailed("VALIDATION_FAILED", "validation error")
		assert.NotErrorIs(t, notFound, other)
	})

	t.Run("Should ignore nil parent", func(t *testing.T) {
		assert.Nil(t, notFound.WrapParent(nil).Parent())
		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=product not found", notFound.Error())
	})
}
