// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleFree      = "free"
	RoleSolo      = "solo"
	RolePro       = "pro"
	RoleAgency    = "agency"
	RoleUnlimited = "unlimited"
	RoleAdmin     = "admin"
)

// UnlimitedCredits marks a plan with no monthly article cap.
const UnlimitedCredits = -1

type User struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Email               string    `db:"email" json:"email"`
	PasswordHash        string    `db:"password_hash" json:"-"`
	Name                string    `db:"name" json:"name"`
	Role                string    `db:"role" json:"role"`
	CreditsUsed         int       `db:"credits_used" json:"credits_used"`
	CreditsLimit        int       `db:"credits_limit" json:"credits_limit"`
	Theme               string    `db:"theme" json:"theme"`
	OnboardingCompleted bool      `db:"onboarding_completed" json:"onboarding_completed"`
	BrandVoice          string    `db:"brand_voice" json:"brand_voice"`
	WebsiteURL          string    `db:"website_url" json:"website_url"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// HasCredits reports whether the user can still generate articles this
// billing cycle. A negative limit means unlimited.
func (u *User) HasCredits() bool {
	return u.CreditsLimit < 0 || u.CreditsUsed < u.CreditsLimit
}

func (u *User) CreditsRemaining() int {
	if u.CreditsLimit < 0 {
		return UnlimitedCredits
	}

	remaining := u.CreditsLimit - u.CreditsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

var roleCredits = map[string]int{
	RoleFree:      5,
	RoleSolo:      40,
	RolePro:       300,
	RoleAgency:    800,
	RoleUnlimited: UnlimitedCredits,
	RoleAdmin:     UnlimitedCredits,
}

// CreditsLimitForRole returns the monthly article quota for a plan
// role. Unknown roles fall back to the free quota.
func CreditsLimitForRole(role string) int {
	if limit, ok := roleCredits[role]; ok {
		return limit
	}
	return roleCredits[RoleFree]
}

func ValidRole(role string) bool {
	_, ok := roleCredits[role]
	return ok
}
