package generators

import (
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// Organization profile. The employee count sits mid-range for the upmarket
// segment the vocabulary targets.
const (
	orgIndustry      = "B2B SaaS"
	orgEmployeeCount = 7500
	orgAgeDays       = 730
)

// OrganizationGenerator produces the root organization.
type OrganizationGenerator struct {
	env *Env
}

func NewOrganizationGenerator(env *Env) *OrganizationGenerator {
	return &OrganizationGenerator{env: env}
}

// Generate builds the single organization every other entity hangs off. The
// organization predates the activity window by a year.
func (g *OrganizationGenerator) Generate() *models.Organization {
	name := g.env.Lexicon.CompanyName()
	return &models.Organization{
		ID:            utils.NewID(g.env.Rand),
		Name:          name,
		Domain:        g.env.Lexicon.Domain(name),
		Industry:      orgIndustry,
		EmployeeCount: orgEmployeeCount,
		CreatedAt:     g.env.Now.AddDate(0, 0, -orgAgeDays),
	}
}
