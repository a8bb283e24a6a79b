package shellquote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSingle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", "''"},
		{"safe characters pass through unquoted", "simple-value_1.0:a/b", "simple-value_1.0:a/b"},
		{"spaces require quoting", "has space", "'has space'"},
		{"embedded single quote", "it's", `'it'"'"'s'`},
		{"double quotes are safe to leave unquoted-wrapped", `say "hi"`, `'say "hi"'`},
		{"dollar sign forces quoting", "$HOME", "'$HOME'"},
		{"backtick forces quoting", "`cmd`", "'`cmd`'"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, QuoteSingle(tc.input))
		})
	}
}
