package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewString50(t *testing.T) {
	t.Run("accepts a value within bounds", func(t *testing.T) {
		s, err := NewString50("FirstName", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", s.Value())
	})

	t.Run("accepts a value of exactly 50 chars", func(t *testing.T) {
		raw := strings.Repeat("a", 50)
		s, err := NewString50("FirstName", raw)
		require.NoError(t, err)
		assert.Equal(t, raw, s.Value())
	})

	t.Run("rejects an empty value", func(t *testing.T) {
		_, err := NewString50("FirstName", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "FirstName: must not be null or empty")
	})

	t.Run("rejects a value of 51 chars", func(t *testing.T) {
		_, err := NewString50("FirstName", strings.Repeat("a", 51))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be more than 50 chars")
	})

	t.Run("the bound counts characters, not bytes", func(t *testing.T) {
		// 50 three-byte characters: 150 bytes, exactly at the bound
		raw := strings.Repeat("日", 50)
		s, err := NewString50("LastName", raw)
		require.NoError(t, err)
		assert.Equal(t, raw, s.Value())

		_, err = NewString50("LastName", strings.Repeat("日", 51))
		assert.Error(t, err)
	})
}

func TestMustNewString50(t *testing.T) {
	assert.Panics(t, func() {
		MustNewString50("FirstName", "")
	})
}

func TestString50Equals(t *testing.T) {
	a := MustNewString50("A", "same")
	b := MustNewString50("B", "same")
	c := MustNewString50("C", "other")
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNewOptionalString50(t *testing.T) {
	t.Run("empty input is accepted as absent", func(t *testing.T) {
		s, err := NewOptionalString50("AddressLine2", "")
		require.NoError(t, err)
		assert.False(t, s.IsPresent())
		assert.Equal(t, "", s.OrEmpty())
	})

	t.Run("value within bounds is accepted as present", func(t *testing.T) {
		s, err := NewOptionalString50("AddressLine2", "Suite 12")
		require.NoError(t, err)
		v, ok := s.Value()
		assert.True(t, ok)
		assert.Equal(t, "Suite 12", v)
	})

	t.Run("value of 51 chars is rejected", func(t *testing.T) {
		_, err := NewOptionalString50("AddressLine2", strings.Repeat("x", 51))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AddressLine2: must not be more than 50 chars")
	})

	t.Run("the bound counts characters, not bytes", func(t *testing.T) {
		s, err := NewOptionalString50("AddressLine2", strings.Repeat("é", 50))
		require.NoError(t, err)
		assert.True(t, s.IsPresent())
	})
}
