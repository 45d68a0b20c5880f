package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"compliance-email-datagen/internal/logging"
	"compliance-email-datagen/internal/models"
)

// TimestampLayout is the textual encoding of the sent_at column: ISO 8601
// with second precision and no zone, matching the ingest schema downstream.
const TimestampLayout = "2006-01-02T15:04:05"

// corpusColumns is the fixed column order of the tabular corpus. Downstream
// bulk loading depends on this exact order.
var corpusColumns = []string{
	"email_id",
	"sender",
	"recipient",
	"cc",
	"subject",
	"body",
	"sent_at",
	"sender_dept",
	"recipient_dept",
	"compliance_label",
}

// WriteCorpus writes the emails as CSV with a header row to w. Fields
// containing delimiters, quotes or newlines are quoted by the encoder.
func WriteCorpus(w io.Writer, emails []*models.GeneratedEmail) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(corpusColumns); err != nil {
		return fmt.Errorf("writing corpus header: %w", err)
	}

	for _, e := range emails {
		record := []string{
			e.EmailID,
			e.Sender,
			e.Recipient,
			e.CC,
			e.Subject,
			e.Body,
			e.SentAt.Format(TimestampLayout),
			e.SenderDept,
			e.RecipientDept,
			string(e.ComplianceLabel),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing corpus record %s: %w", e.EmailID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCorpus creates the destination file (and its parent directory) and
// writes the corpus into it.
func SaveCorpus(path string, emails []*models.GeneratedEmail) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating corpus file: %w", err)
	}

	if err := WriteCorpus(f, emails); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// LogSummary reports the per-label count and percentage of the persisted
// labels. Diagnostic output for the operator, not part of the data contract.
func LogSummary(emails []*models.GeneratedEmail) {
	counts := make(map[models.Label]int)
	for _, e := range emails {
		counts[e.ComplianceLabel]++
	}

	logging.Log.Infof("Label distribution over %d emails:", len(emails))
	for _, label := range models.AllLabels {
		count := counts[label]
		pct := 0.0
		if len(emails) > 0 {
			pct = float64(count) / float64(len(emails)) * 100
		}
		logging.Log.Infof("  %s: %d (%.1f%%)", label, count, pct)
	}
}
