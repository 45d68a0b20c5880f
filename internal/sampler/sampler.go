package sampler

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"compliance-email-datagen/internal/config"
	"compliance-email-datagen/internal/models"
	"compliance-email-datagen/internal/registry"

	"github.com/google/uuid"
)

// businessHoursProbability is the share of timestamps that land inside the
// business-hours window; the remaining 20% come from the off-hours set. The
// split defines the after-hours signal downstream features train on, so it
// is fixed rather than configurable.
const businessHoursProbability = 0.8

// Sampler produces one GeneratedEmail per call. All randomness flows through
// the injected *rand.Rand and all timestamps count back from the injected
// reference time, so a fixed seed and reference time reproduce the exact
// same records.
type Sampler struct {
	reg *registry.Registry
	cfg *models.Config
	rnd *rand.Rand
	now time.Time
}

// New creates a Sampler over the given registry and configuration.
func New(reg *registry.Registry, cfg *models.Config, rnd *rand.Rand, now time.Time) *Sampler {
	return &Sampler{
		reg: reg,
		cfg: cfg,
		rnd: rnd,
		now: now,
	}
}

// DrawLabel picks a compliance category from the configured weight table.
// Weights are relative and normalized at draw time; iteration follows the
// fixed label order so draws are deterministic under a seed.
func (s *Sampler) DrawLabel() (models.Label, error) {
	var total float64
	for _, label := range models.AllLabels {
		total += s.cfg.LabelWeights[label]
	}
	if total <= 0 {
		return "", config.Errorf("labelWeights has zero total weight")
	}

	x := s.rnd.Float64() * total
	last := models.Label("")
	for _, label := range models.AllLabels {
		weight := s.cfg.LabelWeights[label]
		if weight <= 0 {
			continue
		}
		if x < weight {
			return label, nil
		}
		x -= weight
		last = label
	}

	// Floating-point residue can exhaust the loop; the draw belongs to the
	// last positive-weight category.
	return last, nil
}

// Generate produces a fully populated email record for the given true label.
func (s *Sampler) Generate(label models.Label) (*models.GeneratedEmail, error) {
	sender, recipient, err := s.pickSenderRecipient(label)
	if err != nil {
		return nil, err
	}

	template, err := s.reg.RandomTemplate(s.rnd, label)
	if err != nil {
		return nil, err
	}

	body, err := RenderTemplate(template.Body, sender.FirstName(), recipient.FirstName())
	if err != nil {
		return nil, err
	}

	cc := s.pickCC(sender, recipient)

	id, err := uuid.NewRandomFromReader(s.rnd)
	if err != nil {
		return nil, fmt.Errorf("generating email id: %w", err)
	}

	return &models.GeneratedEmail{
		EmailID:         id.String(),
		Sender:          sender.Email,
		Recipient:       recipient.Email,
		CC:              cc,
		Subject:         template.Subject,
		Body:            body,
		SentAt:          s.randomTimestamp(),
		SenderDept:      sender.Department,
		RecipientDept:   recipient.Department,
		ComplianceLabel: label,
		TrueLabel:       label,
	}, nil
}

// pickSenderRecipient selects a sender/recipient pair appropriate for the
// label. Barrier-violation emails must straddle the two barrier departments;
// everything else draws from the full roster with the sender structurally
// excluded from the recipient draw, so sender != recipient always holds.
func (s *Sampler) pickSenderRecipient(label models.Label) (models.Employee, models.Employee, error) {
	if label == models.LabelInfoBarrierViolation {
		deptA := s.reg.EmployeesInDepartment(s.cfg.BarrierDepartments[0])
		deptB := s.reg.EmployeesInDepartment(s.cfg.BarrierDepartments[1])
		if len(deptA) == 0 || len(deptB) == 0 {
			return models.Employee{}, models.Employee{}, config.Errorf(
				"barrier departments %q/%q must both have employees", s.cfg.BarrierDepartments[0], s.cfg.BarrierDepartments[1])
		}
		if s.rnd.Float64() < 0.5 {
			return deptA[s.rnd.Intn(len(deptA))], deptB[s.rnd.Intn(len(deptB))], nil
		}
		return deptB[s.rnd.Intn(len(deptB))], deptA[s.rnd.Intn(len(deptA))], nil
	}

	roster := s.reg.Employees()
	if len(roster) < 2 {
		return models.Employee{}, models.Employee{}, config.Errorf("roster needs at least two employees, got %d", len(roster))
	}

	senderIdx := s.rnd.Intn(len(roster))
	recipientIdx := s.rnd.Intn(len(roster) - 1)
	if recipientIdx >= senderIdx {
		recipientIdx++
	}
	return roster[senderIdx], roster[recipientIdx], nil
}

// pickCC occasionally decorates the email with a CC recipient drawn from the
// roster excluding sender and recipient. Returns "" when no CC is attached.
func (s *Sampler) pickCC(sender, recipient models.Employee) string {
	if s.rnd.Float64() >= s.cfg.CCProbability {
		return ""
	}

	var candidates []models.Employee
	for _, e := range s.reg.Employees() {
		if e.Email != sender.Email && e.Email != recipient.Email {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[s.rnd.Intn(len(candidates))].Email
}

// randomTimestamp generates a send time within the lookback window. Hours are
// 80% uniform over the business-hours range and 20% uniform over the
// off-hours set; minutes are uniform and seconds are zeroed.
func (s *Sampler) randomTimestamp() time.Time {
	days := s.rnd.Intn(s.cfg.DaysBack) + 1
	base := s.now.AddDate(0, 0, -days)

	var hour int
	if s.rnd.Float64() < businessHoursProbability {
		hour = s.cfg.BusinessHours.Start + s.rnd.Intn(s.cfg.BusinessHours.End-s.cfg.BusinessHours.Start+1)
	} else {
		hour = s.cfg.OffHours[s.rnd.Intn(len(s.cfg.OffHours))]
	}
	minute := s.rnd.Intn(60)

	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}

var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// RenderTemplate substitutes the named placeholders of a template body. The
// slot set is closed: anything other than {sender_name} or {recipient_name}
// is a fatal error rather than a silent pass-through.
func RenderTemplate(text, senderName, recipientName string) (string, error) {
	var unknown string
	rendered := placeholderPattern.ReplaceAllStringFunc(text, func(slot string) string {
		switch slot {
		case "{sender_name}":
			return senderName
		case "{recipient_name}":
			return recipientName
		default:
			if unknown == "" {
				unknown = slot
			}
			return slot
		}
	})
	if unknown != "" {
		return "", fmt.Errorf("unknown template placeholder %s", unknown)
	}
	return rendered, nil
}
