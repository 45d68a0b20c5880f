package models

// Label identifies the compliance category assigned to a generated email.
type Label string

const (
	LabelClean                 Label = "CLEAN"
	LabelInsiderTrading        Label = "INSIDER_TRADING"
	LabelConfidentialityBreach Label = "CONFIDENTIALITY_BREACH"
	LabelPersonalTrading       Label = "PERSONAL_TRADING"
	LabelInfoBarrierViolation  Label = "INFO_BARRIER_VIOLATION"
)

// AllLabels is the closed category set, in a fixed order so that weighted
// draws and summaries are deterministic under a seeded random source.
var AllLabels = []Label{
	LabelClean,
	LabelInsiderTrading,
	LabelConfidentialityBreach,
	LabelPersonalTrading,
	LabelInfoBarrierViolation,
}

// ViolationLabels lists every non-clean category.
var ViolationLabels = []Label{
	LabelInsiderTrading,
	LabelConfidentialityBreach,
	LabelPersonalTrading,
	LabelInfoBarrierViolation,
}

// Valid reports whether l is a member of the closed category set.
func (l Label) Valid() bool {
	for _, known := range AllLabels {
		if l == known {
			return true
		}
	}
	return false
}
