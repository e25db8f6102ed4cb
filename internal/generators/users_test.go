package generators

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateUsers(t *testing.T) {
	env := testEnv(3)
	org := NewOrganizationGenerator(env).Generate()
	users := NewUserGenerator(env).Generate(org, 50, "")

	require.Len(t, users, 50)
	for _, user := range users {
		assert.Len(t, user.ID, 36)
		assert.Equal(t, org.ID, user.OrganizationID)
		assert.True(t, strings.HasSuffix(user.Email, "@"+org.Domain), user.Email)
		assert.NotEmpty(t, user.Name)
		assert.NotEmpty(t, user.Department)
		assert.NotEmpty(t, user.JobTitle)
		assert.Empty(t, user.PasswordHash)

		assert.False(t, user.CreatedAt.Before(env.start()), "user created before the window")
		assert.False(t, user.CreatedAt.After(env.Now), "user created in the future")
		assert.False(t, user.LastActiveAt.Before(user.CreatedAt), "active before joining")
		assert.False(t, user.LastActiveAt.After(env.Now), "active in the future")
	}
}

func TestGenerateUsersEmailsStayUnique(t *testing.T) {
	env := testEnv(4)
	org := NewOrganizationGenerator(env).Generate()

	// Five hundred draws from the name pool collide on emails, which must
	// be disambiguated with a counter.
	users := NewUserGenerator(env).Generate(org, 500, "")
	require.Len(t, users, 500)

	suffixed := regexp.MustCompile(`[a-z]\d+@`)
	seen := make(map[string]bool, len(users))
	collisions := 0
	for _, user := range users {
		assert.False(t, seen[user.Email], "duplicate email %s", user.Email)
		seen[user.Email] = true
		if suffixed.MatchString(user.Email) {
			collisions++
		}
	}
	assert.Greater(t, collisions, 0)
}

func TestGenerateUsersSharedPasswordHash(t *testing.T) {
	env := testEnv(5)
	org := NewOrganizationGenerator(env).Generate()
	users := NewUserGenerator(env).Generate(org, 3, "changeme123")

	require.Len(t, users, 3)
	require.NotEmpty(t, users[0].PasswordHash)
	for _, user := range users[1:] {
		assert.Equal(t, users[0].PasswordHash, user.PasswordHash, "hash computed once and shared")
	}
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("changeme123")))
}

func TestGenerateUsersActiveShare(t *testing.T) {
	env := testEnv(6)
	org := NewOrganizationGenerator(env).Generate()
	users := NewUserGenerator(env).Generate(org, 1000, "")

	active := 0
	for _, user := range users {
		if user.IsActive {
			active++
		}
	}
	assert.InDelta(t, 950, active, 40)
}

func TestGenerateUsersEmptyInputs(t *testing.T) {
	env := testEnv(7)
	g := NewUserGenerator(env)

	assert.Nil(t, g.Generate(nil, 10, ""))

	org := NewOrganizationGenerator(env).Generate()
	assert.Nil(t, g.Generate(org, 0, ""))
}
