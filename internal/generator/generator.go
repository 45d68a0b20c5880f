package generator

import (
	"math/rand"
	"sort"
	"time"

	"compliance-email-datagen/internal/models"
	"compliance-email-datagen/internal/noise"
	"compliance-email-datagen/internal/registry"
	"compliance-email-datagen/internal/sampler"
)

// Generator runs the corpus pipeline: draw a label, generate a record,
// corrupt the persisted label, repeat; then order the batch by timestamp.
// It is a one-shot batch routine with no state across invocations beyond
// the shared random source.
type Generator struct {
	cfg      *models.Config
	sampler  *sampler.Sampler
	injector *noise.Injector
}

// New wires a Generator over the given registry and configuration. The
// sampler and noise injector share the same random source so a single seed
// reproduces the whole run.
func New(reg *registry.Registry, cfg *models.Config, rnd *rand.Rand, now time.Time) *Generator {
	return &Generator{
		cfg:      cfg,
		sampler:  sampler.New(reg, cfg, rnd, now),
		injector: noise.New(cfg.NoiseRate, rnd),
	}
}

// GenerateCorpus produces exactly cfg.TotalEmails records, noise-adjusted and
// sorted ascending by send time. The sort is stable, so records with equal
// timestamps keep their generation order.
func (g *Generator) GenerateCorpus() ([]*models.GeneratedEmail, error) {
	emails := make([]*models.GeneratedEmail, 0, g.cfg.TotalEmails)
	for i := 0; i < g.cfg.TotalEmails; i++ {
		label, err := g.sampler.DrawLabel()
		if err != nil {
			return nil, err
		}

		email, err := g.sampler.Generate(label)
		if err != nil {
			return nil, err
		}

		g.injector.Apply(email)
		emails = append(emails, email)
	}

	sort.SliceStable(emails, func(i, j int) bool {
		return emails[i].SentAt.Before(emails[j].SentAt)
	})

	return emails, nil
}
