// AngelaMos | 2026
// gravatar.go

// Package gravatar derives a deterministic fallback avatar URL from an email
// address, used whenever a user has not set avatar_url in their metadata.
package gravatar

import (
	"crypto/md5" //nolint:gosec // gravatar protocol requires md5
	"fmt"
	"strings"
)

const (
	baseURL      = "https://www.gravatar.com/avatar"
	defaultImage = "identicon"
	defaultSize  = 200
)

// URL returns the gravatar URL for the given email, or an empty string when
// the email is empty.
func URL(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}

	hash := md5.Sum([]byte(email)) //nolint:gosec // not used for security
	return fmt.Sprintf(
		"%s/%x?d=%s&s=%d",
		baseURL,
		hash,
		defaultImage,
		defaultSize,
	)
}
