// AngelaMos | 2026
// dto.go

package user

type UpdateProfileRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1,max=100"`
	Theme               *string `json:"theme" validate:"omitempty,oneof=dark light auto"`
	BrandVoice          *string `json:"brand_voice" validate:"omitempty,max=1000"`
	WebsiteURL          *string `json:"website_url" validate:"omitempty,max=255"`
	OnboardingCompleted *bool   `json:"onboarding_completed"`
}

type ListUsersParams struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type ProfileResponse struct {
	User
	CreditsRemaining int `json:"credits_remaining"`
}

func NewProfileResponse(u *User) ProfileResponse {
	return ProfileResponse{
		User:             *u,
		CreditsRemaining: u.CreditsRemaining(),
	}
}
