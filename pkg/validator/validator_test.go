package validator_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("name", "alice"),
			validator.Between("age", 30, 0, 150),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.Between("age", 200, 0, 150),
			validator.ValidEmail("email", "not-an-email"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.ElementsMatch(t, []string{"name", "age", "email"}, verrs.Fields())
	})

	t.Run("error message lists fields", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.RequiredString("name", ""))
		assert.EqualError(t, err, "validation failed: name: field is required")
	})
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		rule  validator.Rule
		valid bool
	}{
		{"required ok", validator.RequiredString("f", "x"), true},
		{"required empty", validator.RequiredString("f", ""), false},
		{"required whitespace", validator.RequiredString("f", " \t"), false},
		{"min len ok", validator.MinLenString("f", "abc", 3), true},
		{"min len short", validator.MinLenString("f", "ab", 3), false},
		{"max len ok", validator.MaxLenString("f", "abc", 3), true},
		{"max len long", validator.MaxLenString("f", "abcd", 3), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, tc.rule.Check())
		})
	}
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Min("f", 5, 5).Check())
	assert.False(t, validator.Min("f", 4, 5).Check())
	assert.True(t, validator.Max("f", 5, 5).Check())
	assert.False(t, validator.Max("f", 6, 5).Check())
	assert.True(t, validator.Between("f", 0.5, 0.0, 1.0).Check())
	assert.False(t, validator.Between("f", 1.5, 0.0, 1.0).Check())
}

func TestPatternRules(t *testing.T) {
	t.Parallel()

	slug := regexp.MustCompile(`^[a-z0-9-]+$`)

	assert.True(t, validator.Matches("f", "my-slug-42", slug).Check())
	assert.False(t, validator.Matches("f", "Not A Slug", slug).Check())

	assert.True(t, validator.ValidEmail("f", "user@example.com").Check())
	assert.False(t, validator.ValidEmail("f", "user@@example").Check())
	assert.False(t, validator.ValidEmail("f", "").Check())
}

func TestInList(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.InList("f", "pro", []string{"free", "pro"}).Check())
	assert.False(t, validator.InList("f", "gold", []string{"free", "pro"}).Check())
	assert.True(t, validator.InList("f", 2, []int{1, 2, 3}).Check())
}

func TestCustom(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Custom("password", "must differ from email", func() bool {
			return false
		}),
	)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "must differ from email", verrs[0].Message)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.RequiredString("name", ""),
		validator.MinLenString("name", "", 3),
	)
	verrs := validator.ExtractValidationErrors(err)

	assert.True(t, validator.IsValidationError(err))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	assert.True(t, verrs.Has("name"))
	assert.False(t, verrs.Has("email"))
	assert.Len(t, verrs.Get("name"), 2)
	assert.Equal(t, []string{"name"}, verrs.Fields())
}
