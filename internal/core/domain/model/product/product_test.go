package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := product.NewProduct("Widget", 9.99, "a widget")

		require.NoError(t, err)
		assert.Equal(t, int64(0), p.ID())
		assert.Equal(t, "Widget", p.Name())
		assert.InDelta(t, 9.99, p.Price(), 0.0001)
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Nil(t, p.GroupID())
		assert.Nil(t, p.SpecialPrice())
		assert.Empty(t, p.ImageRefs())
		require.NoError(t, p.Validate())
	})

	t.Run("name_required", func(t *testing.T) {
		_, err := product.NewProduct("", 9.99, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("price_must_be_positive", func(t *testing.T) {
		_, err := product.NewProduct("Widget", 0, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_BindID(t *testing.T) {
	p, err := product.NewProduct("Widget", 9.99, "")
	require.NoError(t, err)

	require.NoError(t, p.BindID(7))
	assert.Equal(t, int64(7), p.ID())

	t.Run("rebinding_fails", func(t *testing.T) {
		require.Error(t, p.BindID(8))
		assert.Equal(t, int64(7), p.ID())
	})

	t.Run("non_positive_id_fails", func(t *testing.T) {
		q, qErr := product.NewProduct("Widget", 9.99, "")
		require.NoError(t, qErr)
		require.Error(t, q.BindID(0))
	})
}

func TestProduct_ImageSlots(t *testing.T) {
	p, err := product.NewProduct("Widget", 9.99, "")
	require.NoError(t, err)

	require.NoError(t, p.SetImage(1, "img-a.png"))
	require.NoError(t, p.SetImage(4, "img-b.png"))

	ref, err := p.ImageAt(1)
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "img-a.png", *ref)

	assert.Equal(t, []string{"img-a.png", "img-b.png"}, p.ImageRefs())

	t.Run("replace_slot", func(t *testing.T) {
		require.NoError(t, p.SetImage(1, "img-c.png"))
		assert.Equal(t, []string{"img-c.png", "img-b.png"}, p.ImageRefs())
	})

	t.Run("clear_slot", func(t *testing.T) {
		require.NoError(t, p.ClearImage(1))
		assert.Equal(t, []string{"img-b.png"}, p.ImageRefs())
	})

	t.Run("slot_out_of_range", func(t *testing.T) {
		require.Error(t, p.SetImage(0, "x"))
		require.Error(t, p.SetImage(product.ImageSlots+1, "x"))
		_, err := p.ImageAt(0)
		require.Error(t, err)
	})

	t.Run("empty_ref_rejected", func(t *testing.T) {
		require.Error(t, p.SetImage(2, ""))
	})
}

func TestProduct_SpecialPrice(t *testing.T) {
	p, err := product.NewProduct("Widget", 10, "")
	require.NoError(t, err)

	require.NoError(t, p.SetSpecialPrice(8))
	require.NotNil(t, p.SpecialPrice())
	assert.InDelta(t, 8, *p.SpecialPrice(), 0.0001)

	require.Error(t, p.SetSpecialPrice(0))
	require.Error(t, p.SetSpecialPrice(10.01))
}

func TestProduct_Group(t *testing.T) {
	p, err := product.NewProduct("Widget", 10, "")
	require.NoError(t, err)

	require.Error(t, p.SetGroup(0))
	require.NoError(t, p.SetGroup(3))
	require.NotNil(t, p.GroupID())
	assert.Equal(t, int64(3), *p.GroupID())

	p.ClearGroup()
	assert.Nil(t, p.GroupID())
}

func TestRestoreProduct(t *testing.T) {
	groupID := int64(2)
	ref := "img.png"
	var images [product.ImageSlots]*string
	images[0] = &ref

	p, err := product.RestoreProduct(5, "Widget", 9.99, "d", product.StatusInactive, &groupID, nil, images)

	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID())
	assert.Equal(t, product.StatusInactive, p.Status())
	assert.Equal(t, []string{"img.png"}, p.ImageRefs())

	t.Run("invalid_status", func(t *testing.T) {
		_, err := product.RestoreProduct(5, "Widget", 9.99, "", product.Status("X"), nil, nil, images)
		require.Error(t, err)
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := product.RestoreProduct(0, "Widget", 9.99, "", product.StatusActive, nil, nil, images)
		require.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	require.NoError(t, product.StatusActive.Validate())
	require.NoError(t, product.StatusInactive.Validate())
	require.Error(t, product.Status("Z").Validate())
	assert.True(t, product.StatusActive.IsActive())
	assert.False(t, product.StatusInactive.IsActive())
	assert.Equal(t, "A", product.StatusActive.String())
}
