package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "deploy pipeline", want: "deploy pipeline"},
		{name: "percent", in: "100% coverage", want: `100\% coverage`},
		{name: "underscore", in: "snake_case", want: `snake\_case`},
		{name: "backslash", in: `a\b`, want: `a\\b`},
		{name: "wildcard only", in: "%_", want: `\%\_`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
