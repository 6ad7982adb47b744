// AngelaMos | 2026
// policy.go

// Package policy decides which authenticated identities hold administrator
// privileges. The decision is a pure function of the session email against a
// configured allow-list; it is evaluated on every request and never persisted,
// so rotating the list takes effect on the next token verification.
package policy

import (
	"strings"
)

type AdminPolicy struct {
	emails map[string]struct{}
}

// NewAdminPolicy builds a policy from the configured allow-list. Entries are
// matched case-insensitively on the email only.
func NewAdminPolicy(emails []string) *AdminPolicy {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			set[email] = struct{}{}
		}
	}
	return &AdminPolicy{emails: set}
}

func (p *AdminPolicy) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	_, ok := p.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func (p *AdminPolicy) Size() int {
	return len(p.emails)
}
