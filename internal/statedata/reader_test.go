package statedata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestReadFields(t *testing.T) {
	lookup := mapLookup(map[string]string{
		"vienna":   "109000000000,AT-9,AT,AUT,German,1982097,415,1922,1",
		"styria":   "1, 2 ,3",
		"empty":    "",
		"Salzburg": "upper case key",
	})

	t.Run("splits on commas in order", func(t *testing.T) {
		fields, err := ReadFields(lookup, "vienna")
		require.NoError(t, err)
		assert.Equal(t, []string{"109000000000", "AT-9", "AT", "AUT", "German", "1982097", "415", "1922", "1"}, fields)
	})

	t.Run("keeps whitespace", func(t *testing.T) {
		fields, err := ReadFields(lookup, "styria")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", " 2 ", "3"}, fields)
	})

	t.Run("empty value is a single empty field", func(t *testing.T) {
		fields, err := ReadFields(lookup, "empty")
		require.NoError(t, err)
		assert.Equal(t, []string{""}, fields)
	})

	t.Run("missing key is a typed error", func(t *testing.T) {
		fields, err := ReadFields(lookup, "tyrol")
		assert.Nil(t, fields)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigNotFound))

		var missing *MissingConfigError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "tyrol", missing.Key)
		assert.Equal(t, `configuration not found for "tyrol"`, err.Error())
	})

	t.Run("keys are case sensitive", func(t *testing.T) {
		_, err := ReadFields(lookup, "salzburg")
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}
