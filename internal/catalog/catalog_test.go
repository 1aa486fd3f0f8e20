package catalog_test

import (
	"testing"

	"github.com/nikolayk812/foodorder-demo/internal/catalog"
	"github.com/nikolayk812/foodorder-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByType(t *testing.T) {
	c := catalog.Default()

	toppings := c.ListByType(domain.CustomizationTopping)
	sides := c.ListByType(domain.CustomizationSide)

	require.NotEmpty(t, toppings)
	require.NotEmpty(t, sides)
	assert.Len(t, c.All(), len(toppings)+len(sides))

	for _, cu := range toppings {
		assert.Equal(t, domain.CustomizationTopping, cu.Type)
		assert.False(t, cu.Price.Amount.IsNegative())
	}
	for _, cu := range sides {
		assert.Equal(t, domain.CustomizationSide, cu.Type)
	}
}

func TestListByType_StableOrder(t *testing.T) {
	c := catalog.Default()

	first := c.ListByType(domain.CustomizationTopping)
	second := c.ListByType(domain.CustomizationTopping)

	require.Equal(t, first, second)

	// declaration order is preserved
	assert.Equal(t, "Extra Cheese", first[0].Name)
}

func TestListByType_UnknownTypeIsEmpty(t *testing.T) {
	c := catalog.New(nil)

	assert.Empty(t, c.ListByType(domain.CustomizationTopping))
}

func TestByID(t *testing.T) {
	c := catalog.Default()

	got, ok := c.ByID("cust-jalapenos")
	require.True(t, ok)
	assert.Equal(t, "Jalapeños", got.Name)

	_, ok = c.ByID("cust-nope")
	assert.False(t, ok)
}
