// AngelaMos | 2026
// policy_test.go

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminPolicy_IsAdmin(t *testing.T) {
	p := NewAdminPolicy([]string{
		"nilaymishra2011@gmail.com",
		"Nilay2011op@Gmail.com",
	})

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{
			name:  "exact match",
			email: "nilaymishra2011@gmail.com",
			want:  true,
		},
		{
			name:  "upper-cased input matches",
			email: "NILAYMISHRA2011@GMAIL.COM",
			want:  true,
		},
		{
			name:  "mixed case input matches",
			email: "NilayMishra2011@gmail.com",
			want:  true,
		},
		{
			name:  "allow-list entry with mixed case matches",
			email: "nilay2011op@gmail.com",
			want:  true,
		},
		{
			name:  "input with surrounding whitespace matches",
			email: "  nilaymishra2011@gmail.com ",
			want:  true,
		},
		{
			name:  "unlisted email",
			email: "someone@example.com",
			want:  false,
		},
		{
			name:  "near miss on local part",
			email: "nilaymishra2012@gmail.com",
			want:  false,
		},
		{
			name:  "empty email",
			email: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsAdmin(tt.email))
		})
	}
}

func TestNewAdminPolicy_DropsEmptyEntries(t *testing.T) {
	p := NewAdminPolicy([]string{"", "  ", "admin@solace.dev"})

	assert.Equal(t, 1, p.Size())
	assert.True(t, p.IsAdmin("admin@solace.dev"))
	assert.False(t, p.IsAdmin(""))
}
