package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommodity(t *testing.T) {
	t.Run("creates commodity with MT default unit", func(t *testing.T) {
		c, err := NewCommodity("Aluminium Scrap", "Taint/Tabor grade aluminium scrap")

		require.NoError(t, err)
		assert.Equal(t, "Aluminium Scrap", c.Name)
		assert.Equal(t, UnitMT, c.DefaultUnit)
		assert.True(t, c.IsActive)
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCommodity("", "desc")
		assert.Error(t, err)
	})

	t.Run("fails with empty description", func(t *testing.T) {
		_, err := NewCommodity("Copper", "")
		assert.Error(t, err)
	})
}

func TestCommoditySetTradeDefaults(t *testing.T) {
	c, _ := NewCommodity("Copper Wire", "Millberry copper wire scrap")

	t.Run("sets hs code and defaults", func(t *testing.T) {
		err := c.SetTradeDefaults("7404.00", UnitKG, "Chile", "In drums")

		require.NoError(t, err)
		assert.Equal(t, "7404.00", c.HSCode)
		assert.Equal(t, UnitKG, c.DefaultUnit)
		assert.Equal(t, "Chile", c.DefaultOrigin)
	})

	t.Run("keeps unit when empty", func(t *testing.T) {
		err := c.SetTradeDefaults("7404.00", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, UnitKG, c.DefaultUnit)
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		err := c.SetTradeDefaults("", Unit("LBS"), "", "")
		assert.Error(t, err)
	})
}

func TestCommodityDeactivate(t *testing.T) {
	c, _ := NewCommodity("Zinc", "Zinc ingots")
	c.Deactivate()
	assert.False(t, c.IsActive)
}
