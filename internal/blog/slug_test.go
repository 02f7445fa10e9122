package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World!", "hello-world"},
		{"  Go & Rust: 2024 ", "go-rust-2024"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"Ünïcode Title", "n-code-title"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Slugify(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slugify(got), "slugify must be idempotent")
		})
	}
}
