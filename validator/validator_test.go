package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postPayload struct {
	Title  string `json:"title" validate:"required,min=1,max=200"`
	Slug   string `json:"slug" validate:"required,slug"`
	Status string `json:"status" validate:"required,poststatus"`
}

func TestValidate_Slug(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		{"simple slug", "hello-world", true},
		{"single word", "hello", true},
		{"with numbers", "2026-year-in-review", true},
		{"uppercase rejected", "Hello-World", false},
		{"leading hyphen rejected", "-hello", false},
		{"trailing hyphen rejected", "hello-", false},
		{"double hyphen rejected", "hello--world", false},
		{"spaces rejected", "hello world", false},
		{"empty rejected", "", false},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&postPayload{Title: "A post", Slug: tt.slug, Status: "draft"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_PostStatus(t *testing.T) {
	v := New()

	for _, status := range []string{"draft", "published", "archived"} {
		assert.NoError(t, v.Validate(&postPayload{Title: "A post", Slug: "a-post", Status: status}))
	}

	err := v.Validate(&postPayload{Title: "A post", Slug: "a-post", Status: "pending-review"})
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "status", verrs[0].Field, "field names come from JSON tags")
	assert.Contains(t, verrs[0].Message, "draft, published, archived")
}

type themePayload struct {
	Theme string `json:"theme" validate:"required,theme"`
}

func TestValidate_Theme(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&themePayload{Theme: "light"}))
	assert.NoError(t, v.Validate(&themePayload{Theme: "dark"}))
	assert.Error(t, v.Validate(&themePayload{Theme: "solarized"}))
}
