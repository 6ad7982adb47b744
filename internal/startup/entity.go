// AngelaMos | 2026
// entity.go

package startup

import (
	"time"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Toggle returns the opposite visibility. Applying it twice is the identity.
func (v Visibility) Toggle() Visibility {
	if v == VisibilityPublic {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// Startup is a row in the startups table. UserID is set on insert and never
// changes; CreatedAt is server-assigned and immutable.
type Startup struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	ImageURL    *string    `db:"image_url"`
	Visibility  Visibility `db:"visibility"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (s *Startup) IsPublic() bool {
	return s.Visibility == VisibilityPublic
}

// Actor identifies who is performing a mutation. The email feeds the admin
// policy, so ownership checks and admin overrides resolve in one place.
type Actor struct {
	ID    string
	Email string
}
