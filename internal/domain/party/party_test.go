package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParty(t *testing.T) {
	t.Run("creates buyer successfully", func(t *testing.T) {
		p, err := NewParty(TypeBuyer, "Acme Trading", "1 Main St, Springfield")

		require.NoError(t, err)
		assert.Equal(t, TypeBuyer, p.Type)
		assert.Equal(t, "Acme Trading", p.CompanyName)
		assert.True(t, p.IsActive)
		assert.True(t, p.IsBuyer())
		assert.False(t, p.IsSeller())
		assert.Len(t, p.GetDomainEvents(), 1)
	})

	t.Run("creates seller successfully", func(t *testing.T) {
		p, err := NewParty(TypeSeller, "Globex", "2 Export Ave")

		require.NoError(t, err)
		assert.True(t, p.IsSeller())
	})

	t.Run("fails with invalid type", func(t *testing.T) {
		p, err := NewParty(Type("VENDOR"), "Acme", "addr")

		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("fails with empty company name", func(t *testing.T) {
		_, err := NewParty(TypeBuyer, "", "addr")
		assert.Error(t, err)
	})

	t.Run("fails with empty address", func(t *testing.T) {
		_, err := NewParty(TypeBuyer, "Acme", "")
		assert.Error(t, err)
	})
}

func TestPartySetContact(t *testing.T) {
	p, _ := NewParty(TypeBuyer, "Acme", "addr")

	t.Run("lowercases email", func(t *testing.T) {
		err := p.SetContact("John Doe", "John.Doe@Example.COM", "+60 12 345 6789")

		require.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", p.Email)
		assert.Equal(t, "John Doe", p.ContactPerson)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		err := p.SetContact("John", "not-an-email", "")
		assert.Error(t, err)
	})

	t.Run("allows empty email", func(t *testing.T) {
		err := p.SetContact("John", "", "")
		assert.NoError(t, err)
	})
}

func TestPartyDeactivate(t *testing.T) {
	p, _ := NewParty(TypeSeller, "Globex", "addr")
	p.ClearDomainEvents()

	p.Deactivate()

	assert.False(t, p.IsActive)
	assert.Len(t, p.GetDomainEvents(), 1)

	p.Activate()
	assert.True(t, p.IsActive)
}
