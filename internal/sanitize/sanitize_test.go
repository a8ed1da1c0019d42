package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "Sharma Traders",
			want:  "Sharma Traders",
		},
		{
			name:  "special characters stripped",
			input: "Sharma & Sons (Pvt.) Ltd!",
			want:  "Sharma  Sons Pvt Ltd",
		},
		{
			name:  "at sign preserved",
			input: "contact@example.com",
			want:  "contact@examplecom",
		},
		{
			name:  "standalone remove stripped",
			input: "please remove this entry",
			want:  "please  this entry",
		},
		{
			name:  "standalone delete stripped case-insensitively",
			input: "DELETE everything",
			want:  "everything",
		},
		{
			name:  "removed is not a standalone remove",
			input: "removed",
			want:  "removed",
		},
		{
			name:  "deleted is not a standalone delete",
			input: "item deleted yesterday",
			want:  "item deleted yesterday",
		},
		{
			name:  "only forbidden content yields empty",
			input: "!!! $$$ ###",
			want:  "",
		},
		{
			name:  "only restricted words yields empty",
			input: "remove delete Remove",
			want:  "",
		},
		{
			name:  "whitespace trimmed",
			input: "  padded name  ",
			want:  "padded name",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			assert.Equal(t, tt.want, got)

			// Idempotence: cleaning twice changes nothing.
			assert.Equal(t, got, Clean(got))
		})
	}
}

func TestCleanOnlyAllowedCharacters(t *testing.T) {
	inputs := []string{
		"héllo wörld", "a;b:c,d.e", "<script>alert(1)</script>",
		"tab\tand\nnewline", "रेंटल", "100% done",
	}
	for _, in := range inputs {
		out := Clean(in)
		for _, r := range out {
			ok := r == ' ' || r == '@' ||
				(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.Truef(t, ok, "Clean(%q) produced disallowed rune %q", in, r)
		}
		assert.Equal(t, out, Clean(out))
	}
}

func TestCleanOptional(t *testing.T) {
	assert.Nil(t, CleanOptional("!!!"))
	assert.Nil(t, CleanOptional("remove"))
	assert.Nil(t, CleanOptional(""))

	got := CleanOptional(" Ramesh ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Ramesh", *got)
	}
}
