package noise

import (
	"math/rand"

	"compliance-email-datagen/internal/models"
)

// Injector applies post-hoc label corruption to finished records, simulating
// imperfect ground-truth annotation. It touches ComplianceLabel only; the
// sender, recipient, template content and timestamp a record was generated
// with are never resampled.
type Injector struct {
	rate float64
	rnd  *rand.Rand
}

// New creates an Injector with the given corruption rate in [0,1].
func New(rate float64, rnd *rand.Rand) *Injector {
	return &Injector{
		rate: rate,
		rnd:  rnd,
	}
}

// Apply flips the persisted label with probability rate: a clean record gets
// a uniformly chosen violation label, a violation record becomes clean.
// TrueLabel is left untouched so the corruption stays observable.
func (i *Injector) Apply(email *models.GeneratedEmail) {
	if i.rnd.Float64() >= i.rate {
		return
	}

	if email.TrueLabel == models.LabelClean {
		email.ComplianceLabel = models.ViolationLabels[i.rnd.Intn(len(models.ViolationLabels))]
	} else {
		email.ComplianceLabel = models.LabelClean
	}
}
