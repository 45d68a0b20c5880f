package noise

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"compliance-email-datagen/internal/models"
)

func testEmail(label models.Label) *models.GeneratedEmail {
	return &models.GeneratedEmail{
		EmailID:         "id-1",
		Sender:          "s.chen@acmefund.com",
		Recipient:       "j.morrison@acmefund.com",
		Subject:         "Quiet tip",
		Body:            "Between us.",
		SentAt:          time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC),
		SenderDept:      "Research",
		RecipientDept:   "Trading",
		ComplianceLabel: label,
		TrueLabel:       label,
	}
}

func TestApplyRateZero(t *testing.T) {
	inj := New(0, rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		email := testEmail(models.LabelClean)
		inj.Apply(email)
		if email.ComplianceLabel != email.TrueLabel {
			t.Fatal("Label flipped with noise rate 0")
		}
	}
}

func TestApplyRateOne(t *testing.T) {
	inj := New(1, rand.New(rand.NewSource(2)))

	for i := 0; i < 200; i++ {
		clean := testEmail(models.LabelClean)
		inj.Apply(clean)
		if clean.ComplianceLabel == models.LabelClean {
			t.Fatal("Clean label survived noise rate 1")
		}
		if !clean.ComplianceLabel.Valid() {
			t.Fatalf("Flipped label %s outside the category set", clean.ComplianceLabel)
		}

		violation := testEmail(models.LabelInsiderTrading)
		inj.Apply(violation)
		if violation.ComplianceLabel != models.LabelClean {
			t.Fatalf("Violation label flipped to %s, want CLEAN", violation.ComplianceLabel)
		}
	}
}

func TestApplyRateConvergence(t *testing.T) {
	const rate = 0.15
	const n = 20000

	inj := New(rate, rand.New(rand.NewSource(42)))
	labels := []models.Label{
		models.LabelClean,
		models.LabelInsiderTrading,
		models.LabelConfidentialityBreach,
	}

	flipped := 0
	for i := 0; i < n; i++ {
		email := testEmail(labels[i%len(labels)])
		inj.Apply(email)
		if email.ComplianceLabel != email.TrueLabel {
			flipped++
		}
	}

	got := float64(flipped) / float64(n)
	if math.Abs(got-rate) > 0.015 {
		t.Errorf("Empirical flip rate %.4f, want %.2f ±0.015", got, rate)
	}
}

func TestApplyTouchesOnlyPersistedLabel(t *testing.T) {
	inj := New(1, rand.New(rand.NewSource(3)))

	email := testEmail(models.LabelPersonalTrading)
	before := *email
	inj.Apply(email)

	if email.ComplianceLabel == before.ComplianceLabel {
		t.Fatal("Expected label flip with noise rate 1")
	}

	after := *email
	after.ComplianceLabel = before.ComplianceLabel
	if after != before {
		t.Errorf("Fields beyond ComplianceLabel changed:\nbefore %+v\nafter  %+v", before, *email)
	}
}
