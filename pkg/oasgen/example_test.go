package oasgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertExample(t *testing.T) {
	t.Run("struct fields use json names", func(t *testing.T) {
		type user struct {
			Name   string `json:"name"`
			Age    int    `json:"age,omitempty"`
			Secret string `json:"-"`
			NoTag  bool
		}
		converted, ok, diags := convertExample(user{Name: "Ann", Age: 42, Secret: "x", NoTag: true})
		require.True(t, ok)
		assert.Empty(t, diags)
		assert.Equal(t, map[string]any{
			"name":  "Ann",
			"age":   int64(42),
			"NoTag": true,
		}, converted)
	})

	t.Run("time values are formatted as RFC3339", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		converted, ok, diags := convertExample(ts)
		require.True(t, ok)
		assert.Empty(t, diags)
		assert.Equal(t, "2024-05-01T12:30:00Z", converted)
	})

	t.Run("slices and nested structs", func(t *testing.T) {
		type point struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		}
		converted, ok, diags := convertExample([]point{{X: 1, Y: 2}, {X: 3, Y: 4}})
		require.True(t, ok)
		assert.Empty(t, diags)
		assert.Equal(t, []any{
			map[string]any{"x": 1.0, "y": 2.0},
			map[string]any{"x": 3.0, "y": 4.0},
		}, converted)
	})

	t.Run("nil pointers convert to nil", func(t *testing.T) {
		type wrapper struct {
			Inner *string `json:"inner"`
		}
		converted, ok, diags := convertExample(wrapper{})
		require.True(t, ok)
		assert.Empty(t, diags)
		assert.Equal(t, map[string]any{"inner": nil}, converted)
	})

	t.Run("unconvertible field is skipped with a diagnostic", func(t *testing.T) {
		type withFunc struct {
			Name string `json:"name"`
			Fn   func() `json:"fn"`
		}
		converted, ok, diags := convertExample(withFunc{Name: "Ann", Fn: func() {}})
		require.True(t, ok)
		require.Len(t, diags, 1)
		assert.Equal(t, "$.fn", diags[0].Subject)
		assert.Equal(t, map[string]any{"name": "Ann"}, converted)
	})

	t.Run("wholly unconvertible value", func(t *testing.T) {
		_, ok, diags := convertExample(make(chan int))
		assert.False(t, ok)
		require.Len(t, diags, 1)
		assert.Equal(t, "$", diags[0].Subject)
	})

	t.Run("non-string map keys are rejected", func(t *testing.T) {
		_, ok, diags := convertExample(map[int]string{1: "one"})
		assert.False(t, ok)
		assert.Len(t, diags, 1)
	})

	t.Run("nil value", func(t *testing.T) {
		converted, ok, diags := convertExample(nil)
		assert.True(t, ok)
		assert.Empty(t, diags)
		assert.Nil(t, converted)
	})

	t.Run("cyclic values terminate", func(t *testing.T) {
		type node struct {
			Next *node `json:"next"`
		}
		first := &node{}
		first.Next = first
		_, _, diags := convertExample(first)
		require.NotEmpty(t, diags)
		assert.Contains(t, diags[0].Message, "too deep")
	})
}
