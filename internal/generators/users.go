package generators

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

const (
	userActiveProbability       = 0.95
	userRecentActiveProbability = 0.90
)

// UserGenerator produces the organization's user roster.
type UserGenerator struct {
	env *Env
}

func NewUserGenerator(env *Env) *UserGenerator {
	return &UserGenerator{env: env}
}

// Generate builds count users with unique corporate emails on the
// organization's domain. The seed password is hashed once and shared by
// every user; an empty password leaves the hash column empty.
func (g *UserGenerator) Generate(org *models.Organization, count int, seedPassword string) []models.User {
	if org == nil || count <= 0 {
		return nil
	}

	passwordHash := g.hashPassword(seedPassword)

	r := g.env.Rand
	start := g.env.start()
	usedEmails := make(map[string]bool, count)

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		firstName, lastName := g.env.Lexicon.FullName()

		// Disambiguate collisions with a counter before the @
		email := g.env.Lexicon.Email(firstName, lastName, org.Domain)
		base := email
		for counter := 1; usedEmails[email]; counter++ {
			email = strings.Replace(base, "@"+org.Domain, fmt.Sprintf("%d@%s", counter, org.Domain), 1)
		}
		usedEmails[email] = true

		department := g.env.Lexicon.Department()
		jobTitle := g.env.Lexicon.JobTitle(department)

		createdAt := start.AddDate(0, 0, r.Intn(activityWindowDays+1))

		// Most users were seen within the last three days; the rest went
		// quiet within a month of joining.
		var lastActive time.Time
		if r.Float64() < userRecentActiveProbability {
			lastActive = g.env.Now.Add(-time.Duration(1+r.Intn(72)) * time.Hour)
		} else {
			lastActive = createdAt.AddDate(0, 0, 1+r.Intn(30))
		}
		if lastActive.Before(createdAt) {
			lastActive = createdAt
		}
		if lastActive.After(g.env.Now) {
			lastActive = g.env.Now
		}

		users = append(users, models.User{
			ID:             utils.NewID(r),
			OrganizationID: org.ID,
			Email:          email,
			Name:           firstName + " " + lastName,
			PasswordHash:   passwordHash,
			Department:     department,
			JobTitle:       jobTitle,
			IsActive:       r.Float64() < userActiveProbability,
			CreatedAt:      createdAt,
			LastActiveAt:   lastActive,
		})
	}

	return users
}

// hashPassword bcrypt-hashes the shared password at minimum cost.
func (g *UserGenerator) hashPassword(password string) string {
	if password == "" {
		return ""
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		g.env.Logger.Warn("password hash failed, leaving hash column empty", "error", err)
		return ""
	}
	return string(hash)
}
