// AngelaMos | 2026
// plans.go

package pricing

import "github.com/c-jay69/hydraseo/internal/user"

type Plan struct {
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Period   string   `json:"period"`
	Articles int      `json:"articles"`
	Features []string `json:"features"`
}

// Plans is the public pricing table. Article allowances mirror the
// per-role credit limits enforced at generation time.
var Plans = []Plan{
	{
		Name:     "Free",
		Price:    0,
		Period:   "month",
		Articles: user.CreditsLimitForRole(user.RoleFree),
		Features: []string{
			"5 articles/month",
			"Basic SEO optimization",
			"Email support",
			"Basic analytics",
		},
	},
	{
		Name:     "Solo",
		Price:    9,
		Period:   "month",
		Articles: user.CreditsLimitForRole(user.RoleSolo),
		Features: []string{
			"40 articles/month",
			"All SEO features",
			"AI Image generation",
			"WordPress integration",
			"Priority support",
		},
	},
	{
		Name:     "Pro",
		Price:    49,
		Period:   "month",
		Articles: user.CreditsLimitForRole(user.RolePro),
		Features: []string{
			"300 articles/month",
			"All features",
			"Bulk generation",
			"Amazon integration",
			"API access",
			"Advanced analytics",
		},
	},
	{
		Name:     "Agency",
		Price:    99,
		Period:   "month",
		Articles: user.CreditsLimitForRole(user.RoleAgency),
		Features: []string{
			"800 articles/month",
			"Everything in Pro",
			"Team collaboration",
			"White-label options",
			"Dedicated support",
		},
	},
	{
		Name:     "Unlimited",
		Price:    199,
		Period:   "month",
		Articles: user.CreditsLimitForRole(user.RoleUnlimited),
		Features: []string{
			"Unlimited articles",
			"All features",
			"Priority AI processing",
			"Custom API limits",
			"Account manager",
		},
	},
}
