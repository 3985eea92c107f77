// AngelaMos | 2026
// entity_test.go

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCredits(t *testing.T) {
	u := &User{CreditsUsed: 4, CreditsLimit: 5}
	assert.True(t, u.HasCredits())

	u.CreditsUsed = 5
	assert.False(t, u.HasCredits())

	u.CreditsUsed = 6
	assert.False(t, u.HasCredits())

	unlimited := &User{CreditsUsed: 100000, CreditsLimit: UnlimitedCredits}
	assert.True(t, unlimited.HasCredits())
}

func TestCreditsRemaining(t *testing.T) {
	u := &User{CreditsUsed: 2, CreditsLimit: 5}
	assert.Equal(t, 3, u.CreditsRemaining())

	// Overshoot clamps to zero instead of going negative.
	u.CreditsUsed = 7
	assert.Equal(t, 0, u.CreditsRemaining())

	unlimited := &User{CreditsUsed: 42, CreditsLimit: UnlimitedCredits}
	assert.Equal(t, UnlimitedCredits, unlimited.CreditsRemaining())
}

func TestCreditsLimitForRole(t *testing.T) {
	assert.Equal(t, 5, CreditsLimitForRole(RoleFree))
	assert.Equal(t, 40, CreditsLimitForRole(RoleSolo))
	assert.Equal(t, 300, CreditsLimitForRole(RolePro))
	assert.Equal(t, 800, CreditsLimitForRole(RoleAgency))
	assert.Equal(t, UnlimitedCredits, CreditsLimitForRole(RoleUnlimited))
	assert.Equal(t, UnlimitedCredits, CreditsLimitForRole(RoleAdmin))

	// Unknown roles get the free quota.
	assert.Equal(t, 5, CreditsLimitForRole("enterprise"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleFree))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("enterprise"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUnlimited}).IsAdmin())
}
