package models

import "time"

// GeneratedEmail is one record of the synthetic corpus. Records are created
// once by the sampler and never mutated afterwards, with a single exception:
// the noise injector may overwrite ComplianceLabel after generation.
//
// TrueLabel is the label that drove sender/recipient and template selection.
// ComplianceLabel is what gets persisted and may differ from TrueLabel when
// label noise is enabled; a record whose content describes a violation can
// deliberately carry a CLEAN label (and vice versa) to simulate annotation
// error. TrueLabel is never serialized.
type GeneratedEmail struct {
	EmailID         string
	Sender          string
	Recipient       string
	CC              string
	Subject         string
	Body            string
	SentAt          time.Time
	SenderDept      string
	RecipientDept   string
	ComplianceLabel Label
	TrueLabel       Label
}
