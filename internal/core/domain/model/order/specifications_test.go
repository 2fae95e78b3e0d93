package order_test

import (
	"testing"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpecifications(t *testing.T) {
	t.Run("should create specifications with canonical option spelling", func(t *testing.T) {
		s, err := order.NewSpecifications(" business cards ", "standard", 1000, "MATTE", true)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, order.BusinessCards, s.Type())
		assert.Equal(t, order.StandardSize, s.Size())
		assert.Equal(t, 1000, s.Quantity())
		assert.Equal(t, order.MattePaper, s.PaperType())
		assert.True(t, s.Color())
	})

	t.Run("should accept minimum quantity", func(t *testing.T) {
		s, err := order.NewSpecifications("Posters", "Large", order.MinQuantity, "Premium", false)

		require.NoError(t, err)
		assert.Equal(t, 1, s.Quantity())
	})

	t.Run("should reject zero and negative quantity", func(t *testing.T) {
		for _, q := range []int{0, -5} {
			_, err := order.NewSpecifications("Flyers", "Standard", q, "Glossy", true)

			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("should reject values outside the option sets", func(t *testing.T) {
		_, err := order.NewSpecifications("Stickers", "A4", 10, "Canvas", false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "type")
		assert.Contains(t, err.Error(), "size")
		assert.Contains(t, err.Error(), "paper type")
	})

	t.Run("should require every option", func(t *testing.T) {
		_, err := order.NewSpecifications("", " ", 10, "", false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value specifications fail validation", func(t *testing.T) {
		var s order.Specifications

		assert.Equal(t, order.ErrSpecificationsIsNotConstructed, s.Validate())
	})
}

func TestSpecifications_Input(t *testing.T) {
	s, err := order.NewSpecifications("flyers", "custom", 250, "recycled", false)
	require.NoError(t, err)

	in := s.Input()

	assert.Equal(t, order.SpecificationsInput{
		Type:      "Flyers",
		Size:      "Custom",
		Quantity:  250,
		PaperType: "Recycled",
		Color:     false,
	}, in)

	rebuilt, err := in.Build()
	require.NoError(t, err)
	assert.Equal(t, s, rebuilt)
}

func TestOptionSets(t *testing.T) {
	assert.Len(t, order.PrintTypes(), 5)
	assert.Len(t, order.Sizes(), 3)
	assert.Len(t, order.PaperTypes(), 4)

	for _, pt := range order.PrintTypes() {
		parsed, err := order.ParsePrintType(string(pt))
		require.NoError(t, err)
		assert.Equal(t, pt, parsed)
	}
}
