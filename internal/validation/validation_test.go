package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var vehicleRules = []Rule{
	{Field: "name", Kind: String},
	{Field: "model", Kind: String},
	{Field: "size", Kind: Number},
}

func TestCheck(t *testing.T) {
	t.Run("Valid payload", func(t *testing.T) {
		payload := map[string]any{"name": "X-wing", "model": "T-65B", "size": float64(4)}
		assert.NoError(t, Check(payload, vehicleRules))
	})

	t.Run("Missing field", func(t *testing.T) {
		payload := map[string]any{"model": "T-65B", "size": float64(4)}
		err := Check(payload, vehicleRules)
		assert.EqualError(t, err, `"name" must be a string`)
	})

	t.Run("Blank string after trimming", func(t *testing.T) {
		payload := map[string]any{"name": "   ", "model": "T-65B", "size": float64(4)}
		err := Check(payload, vehicleRules)
		assert.EqualError(t, err, `"name" must be a string`)
	})

	t.Run("Wrong primitive for string field", func(t *testing.T) {
		payload := map[string]any{"name": float64(7), "model": "T-65B", "size": float64(4)}
		err := Check(payload, vehicleRules)
		assert.EqualError(t, err, `"name" must be a string`)
	})

	t.Run("Wrong primitive for number field", func(t *testing.T) {
		payload := map[string]any{"name": "X-wing", "model": "T-65B", "size": "4"}
		err := Check(payload, vehicleRules)
		assert.EqualError(t, err, `"size" must be a number`)
	})

	t.Run("First failure wins", func(t *testing.T) {
		// Both name and size are invalid; only name is reported.
		payload := map[string]any{"name": "", "model": "T-65B", "size": "big"}
		err := Check(payload, vehicleRules)
		assert.EqualError(t, err, `"name" must be a string`)
	})

	t.Run("Empty payload reports first rule", func(t *testing.T) {
		err := Check(map[string]any{}, vehicleRules)
		assert.EqualError(t, err, `"name" must be a string`)
	})
}

func TestAccessors(t *testing.T) {
	payload := map[string]any{
		"name":    " Leia ",
		"size":    float64(12),
		"climate": "arid",
	}

	t.Run("Str keeps raw value", func(t *testing.T) {
		assert.Equal(t, " Leia ", Str(payload, "name"))
		assert.Equal(t, "", Str(payload, "missing"))
	})

	t.Run("Int truncates", func(t *testing.T) {
		assert.Equal(t, 12, Int(payload, "size"))
		assert.Equal(t, 0, Int(payload, "missing"))
	})

	t.Run("OptStr reports presence", func(t *testing.T) {
		v, ok := OptStr(payload, "climate")
		assert.True(t, ok)
		assert.Equal(t, "arid", v)

		_, ok = OptStr(payload, "image")
		assert.False(t, ok)

		_, ok = OptStr(payload, "size")
		assert.False(t, ok)
	})
}
