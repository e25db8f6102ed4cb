package generators

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/workseedhq/workseed/internal/distribution"
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// projectTemplate describes one department archetype: a name with optional
// {q}/{n}/{year}/{feature} slots, a project type and a section flow.
type projectTemplate struct {
	name     string
	projType models.ProjectType
	sections []string
}

// departmentOrder fixes the scan order for department inference; iterating
// the template map would reorder draws between runs.
var departmentOrder = []string{"Engineering", "Product", "Marketing", "Sales", "Operations"}

var projectTemplates = map[string][]projectTemplate{
	"Engineering": {
		{"Q{q} Sprint {n}", models.ProjectTypeSprint, []string{"Backlog", "In Progress", "Review", "Done"}},
		{"Platform Reliability", models.ProjectTypeKanban, []string{"To Do", "Doing", "Done"}},
		{"API v{n} Development", models.ProjectTypeSprint, []string{"Planning", "Development", "Testing", "Deployed"}},
		{"Tech Debt Tracker", models.ProjectTypeKanban, []string{"Identified", "Prioritized", "In Progress", "Resolved"}},
		{"Security Improvements", models.ProjectTypeKanban, []string{"Audit Items", "In Progress", "Verified", "Complete"}},
	},
	"Product": {
		{"Product Roadmap {year}", models.ProjectTypeKanban, []string{"Ideas", "Researching", "Planned", "Building", "Launched"}},
		{"Feature: {feature}", models.ProjectTypeSprint, []string{"Discovery", "Design", "Development", "Launch"}},
		{"User Feedback Tracker", models.ProjectTypeKanban, []string{"New", "Reviewing", "Planned", "Shipped"}},
	},
	"Marketing": {
		{"Q{q} Marketing Campaigns", models.ProjectTypeCampaign, []string{"Planning", "In Progress", "Live", "Completed"}},
		{"Content Calendar", models.ProjectTypeOperations, []string{"Ideas", "Writing", "Review", "Published"}},
		{"Website Redesign", models.ProjectTypeSprint, []string{"Research", "Design", "Development", "Launch"}},
		{"Brand Refresh {year}", models.ProjectTypeCampaign, []string{"Strategy", "Creative", "Production", "Rollout"}},
	},
	"Sales": {
		{"Enterprise Deals Q{q}", models.ProjectTypeOperations, []string{"Prospecting", "Qualifying", "Proposal", "Negotiation", "Closed"}},
		{"Sales Enablement", models.ProjectTypeKanban, []string{"Requested", "Creating", "Review", "Published"}},
	},
	"Operations": {
		{"Company OKRs {year}", models.ProjectTypeOperations, []string{"Draft", "Active", "Completed"}},
		{"Process Improvements", models.ProjectTypeKanban, []string{"Ideas", "Evaluating", "Implementing", "Done"}},
		{"Vendor Management", models.ProjectTypeOperations, []string{"To Review", "In Negotiation", "Active", "Archived"}},
	},
}

var projectFeatures = []string{
	"Dashboard Analytics", "User Permissions", "API Integrations",
	"Mobile App", "Reporting Module", "SSO Support", "Bulk Actions",
	"Export Functionality", "Notifications", "Search Enhancement",
}

var projectColors = []string{"red", "orange", "yellow", "green", "blue", "purple", "pink"}

const (
	projectCreationWindowDays = 150
	projectDueProbability     = 0.6
	projectDueMinDays         = 30
	projectDueMaxDays         = 120
	defaultDepartment         = "Operations"
)

// ProjectGenerator produces projects and their section flows.
type ProjectGenerator struct {
	env *Env
}

func NewProjectGenerator(env *Env) *ProjectGenerator {
	return &ProjectGenerator{env: env}
}

// Generate spreads count projects over the teams. Each project carries the
// section flow of its template, positioned 0..k-1 in flow order and created
// with the project.
func (g *ProjectGenerator) Generate(teams []models.Team, users []models.User, count int) ([]models.Project, []models.Section) {
	if len(teams) == 0 || len(users) == 0 || count <= 0 {
		return nil, nil
	}

	r := g.env.Rand
	start := g.env.start()
	quarter := (int(g.env.Now.Month())-1)/3 + 1
	year := g.env.Now.Year()

	projects := make([]models.Project, 0, count)
	sections := make([]models.Section, 0, count*4)

	for i := 0; i < count; i++ {
		team := teams[r.Intn(len(teams))]

		templates := projectTemplates[inferDepartment(team.Name)]
		template := templates[r.Intn(len(templates))]

		name := fillProjectName(template.name, quarter, 1+r.Intn(5), year, projectFeatures[r.Intn(len(projectFeatures))])

		createdAt := start.AddDate(0, 0, r.Intn(projectCreationWindowDays+1))

		// 60% of projects get a date-only due date a month or more out
		var dueDate *time.Time
		if r.Float64() < projectDueProbability {
			day := createdAt.AddDate(0, 0, projectDueMinDays+r.Intn(projectDueMaxDays-projectDueMinDays+1))
			due := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
			dueDate = &due
		}

		project := models.Project{
			ID:          utils.NewID(r),
			TeamID:      team.ID,
			OwnerID:     users[r.Intn(len(users))].ID,
			Name:        name,
			Description: fmt.Sprintf("Project for tracking %s work in %s.", template.projType, team.Name),
			Status:      models.ProjectStatus(distribution.ProjectStatus(r)),
			ProjectType: template.projType,
			Color:       projectColors[r.Intn(len(projectColors))],
			CreatedAt:   createdAt,
			DueDate:     dueDate,
		}
		projects = append(projects, project)

		for pos, sectionName := range template.sections {
			sections = append(sections, models.Section{
				ID:        utils.NewID(r),
				ProjectID: project.ID,
				Name:      sectionName,
				Position:  pos,
				CreatedAt: createdAt,
			})
		}
	}

	return projects, sections
}

// inferDepartment maps a team name to a template department by substring,
// falling back to Operations.
func inferDepartment(teamName string) string {
	lower := strings.ToLower(teamName)
	for _, dept := range departmentOrder {
		if strings.Contains(lower, strings.ToLower(dept)) {
			return dept
		}
	}
	return defaultDepartment
}

// fillProjectName resolves the {q}/{n}/{year}/{feature} slots of a template
// name.
func fillProjectName(template string, quarter, n, year int, feature string) string {
	replacer := strings.NewReplacer(
		"{q}", strconv.Itoa(quarter),
		"{n}", strconv.Itoa(n),
		"{year}", strconv.Itoa(year),
		"{feature}", feature,
	)
	return replacer.Replace(template)
}
