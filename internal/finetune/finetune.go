package finetune

import (
	"math/rand"

	"compliance-email-datagen/internal/models"
	"compliance-email-datagen/internal/registry"
	"compliance-email-datagen/internal/sampler"
)

// promptInstruction frames every fine-tuning prompt. Inference prompts must
// match this structure, so it is a fixed literal rather than configuration.
const promptInstruction = "Classify this hedge fund email for compliance violations. " +
	"Categories: INSIDER_TRADING, CONFIDENTIALITY_BREACH, PERSONAL_TRADING, INFO_BARRIER_VIOLATION, CLEAN. " +
	"Email: "

// placeholderNames anonymize the template slots in fine-tuning samples; the
// pass is independent of the employee roster.
var placeholderNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Quinn",
}

// genericRationales back templates that carry no rationale of their own.
var genericRationales = map[models.Label][]string{
	models.LabelClean: {
		"This email contains normal business communication with no compliance concerns.",
		"This email is routine internal communication and raises no compliance issues.",
	},
	models.LabelInsiderTrading: {
		"This email contains material non-public information (MNPI) or tips about trading before public announcements.",
		"This email shares non-public information from an inside source to inform trading decisions.",
	},
	models.LabelConfidentialityBreach: {
		"This email shares confidential client or fund information with unauthorized recipients.",
		"This email discloses proprietary or client-confidential material outside its permitted audience.",
	},
	models.LabelPersonalTrading: {
		"This email discusses personal trading activity that may violate pre-clearance or disclosure requirements.",
		"This email describes personal account trades conducted without the required approvals or reporting.",
	},
	models.LabelInfoBarrierViolation: {
		"This email crosses information barriers (Chinese walls) between Research and Trading departments.",
		"This email passes pre-publication research directly across the Research/Trading information barrier.",
	},
}

// Builder produces the balanced fine-tuning corpus. It samples templates
// directly with fixed per-category counts and never applies label noise;
// only the main corpus carries corrupted labels.
type Builder struct {
	reg *registry.Registry
	cfg *models.Config
	rnd *rand.Rand
}

// NewBuilder creates a Builder over the given registry and configuration.
func NewBuilder(reg *registry.Registry, cfg *models.Config, rnd *rand.Rand) *Builder {
	return &Builder{
		reg: reg,
		cfg: cfg,
		rnd: rnd,
	}
}

// Build generates sum(finetuneCounts) prompt/completion pairs and shuffles
// them; no timestamp exists here, so no realistic ordering is implied.
func (b *Builder) Build() ([]models.FinetuneSample, error) {
	var samples []models.FinetuneSample
	for _, label := range models.AllLabels {
		count := b.cfg.FinetuneCounts[label]
		for i := 0; i < count; i++ {
			sample, err := b.sample(label)
			if err != nil {
				return nil, err
			}
			samples = append(samples, sample)
		}
	}

	b.rnd.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})

	return samples, nil
}

func (b *Builder) sample(label models.Label) (models.FinetuneSample, error) {
	template, err := b.reg.RandomTemplate(b.rnd, label)
	if err != nil {
		return models.FinetuneSample{}, err
	}

	senderIdx := b.rnd.Intn(len(placeholderNames))
	recipientIdx := b.rnd.Intn(len(placeholderNames) - 1)
	if recipientIdx >= senderIdx {
		recipientIdx++
	}

	body, err := sampler.RenderTemplate(template.Body, placeholderNames[senderIdx], placeholderNames[recipientIdx])
	if err != nil {
		return models.FinetuneSample{}, err
	}

	rationale := template.Rationale
	if rationale == "" {
		pool := genericRationales[label]
		rationale = pool[b.rnd.Intn(len(pool))]
	}

	return models.FinetuneSample{
		Prompt:     promptInstruction + body + " Classification:",
		Completion: string(label) + " - " + rationale,
	}, nil
}
