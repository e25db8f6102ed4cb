package generators

import (
	"fmt"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// teamTemplates is the fixed roster of B2B SaaS team names. A run never
// creates more teams than there are templates.
var teamTemplates = []string{
	"Platform Engineering",
	"Frontend Team",
	"Backend Services",
	"Mobile Team",
	"DevOps & Infrastructure",
	"Product Management",
	"UX/UI Design",
	"Growth Marketing",
	"Content & Brand",
	"Enterprise Sales",
	"Customer Success",
	"Revenue Operations",
}

const (
	teamCreationWindowDays = 30
	teamMinSize            = 3
	teamMaxSize            = 10
	membershipJoinSpanDays = 14
)

// TeamGenerator produces teams and their memberships.
type TeamGenerator struct {
	env *Env
}

func NewTeamGenerator(env *Env) *TeamGenerator {
	return &TeamGenerator{env: env}
}

// Generate samples count distinct names from the template roster. Teams all
// form early in the organization's activity window.
func (g *TeamGenerator) Generate(org *models.Organization, count int) []models.Team {
	if org == nil || count <= 0 {
		return nil
	}
	if count > len(teamTemplates) {
		count = len(teamTemplates)
	}

	r := g.env.Rand
	start := g.env.start()

	teams := make([]models.Team, 0, count)
	for _, idx := range r.Perm(len(teamTemplates))[:count] {
		name := teamTemplates[idx]
		teams = append(teams, models.Team{
			ID:             utils.NewID(r),
			OrganizationID: org.ID,
			Name:           name,
			Description:    fmt.Sprintf("The %s team at our company.", name),
			CreatedAt:      start.AddDate(0, 0, r.Intn(teamCreationWindowDays+1)),
		})
	}
	return teams
}

// Memberships staffs each team with 3..10 users drawn without replacement,
// capped by the roster size. The first member drawn is the team admin;
// everyone joins within two weeks of the team forming.
func (g *TeamGenerator) Memberships(teams []models.Team, users []models.User) []models.TeamMembership {
	if len(teams) == 0 || len(users) == 0 {
		return nil
	}

	r := g.env.Rand
	memberships := make([]models.TeamMembership, 0, len(teams)*teamMaxSize)

	for _, team := range teams {
		size := teamMinSize + r.Intn(teamMaxSize-teamMinSize+1)
		if size > len(users) {
			size = len(users)
		}

		for i, idx := range r.Perm(len(users))[:size] {
			role := models.RoleMember
			if i == 0 {
				role = models.RoleAdmin
			}
			memberships = append(memberships, models.TeamMembership{
				ID:       utils.NewID(r),
				TeamID:   team.ID,
				UserID:   users[idx].ID,
				Role:     role,
				JoinedAt: team.CreatedAt.AddDate(0, 0, r.Intn(membershipJoinSpanDays+1)),
			})
		}
	}
	return memberships
}
