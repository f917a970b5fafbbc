package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

func TestIn(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		v := validation.In("short", "long")
		assert.Equal(t, "in short, long", v.Description())
		assert.NoError(t, v.Validate("short"))
		assert.NoError(t, v.Validate("long"))
		assert.EqualError(t, v.Validate("not in"), "data isn't in short, long")
	})

	t.Run("numbers", func(t *testing.T) {
		v := validation.In(1, 2, 3)
		assert.NoError(t, v.Validate(2))
		assert.EqualError(t, v.Validate(4), "data isn't in 1, 2, 3")
	})

	t.Run("negated", func(t *testing.T) {
		v := validation.Not(validation.In("admin", "root"))
		assert.NoError(t, v.Validate("guest"))
		assert.EqualError(t, v.Validate("root"), "data is in admin, root")
	})

	t.Run("not affected by later changes to the input slice", func(t *testing.T) {
		values := []string{"a", "b"}
		v := validation.In(values...)
		values[0] = "z"
		assert.NoError(t, v.Validate("a"))
	})
}
