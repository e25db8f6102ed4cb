// Package generators produces the entities of one synthetic workspace.
// Every random value flows from the shared Env's seeded source, so a fixed
// seed replays the identical dataset, identifiers included. Generators
// degrade to an empty result when an upstream collection they depend on is
// empty; they never fail a run.
package generators

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/workseedhq/workseed/internal/content"
	"github.com/workseedhq/workseed/internal/lexicon"
)

// activityWindowDays is the span of workspace history generated before now.
const activityWindowDays = 365

// Env bundles the collaborators every generator shares: one seeded rand
// source, the run's reference time, the vocabulary and the content library.
type Env struct {
	Rand    *rand.Rand
	Now     time.Time
	Lexicon *lexicon.Lexicon
	Content *content.Library
	Logger  *slog.Logger
}

// NewEnv builds the environment for one run. The lexicon and content
// library draw from the same source as the generators.
func NewEnv(seed int64, now time.Time, enricher content.Enricher, logger *slog.Logger) *Env {
	r := rand.New(rand.NewSource(seed))
	return &Env{
		Rand:    r,
		Now:     now,
		Lexicon: lexicon.New(r),
		Content: content.NewLibrary(r, enricher, logger),
		Logger:  logger,
	}
}

// start returns the beginning of the activity window.
func (e *Env) start() time.Time {
	return e.Now.AddDate(0, 0, -activityWindowDays)
}
