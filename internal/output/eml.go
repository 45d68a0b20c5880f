package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"compliance-email-datagen/internal/models"

	"github.com/emersion/go-message/mail"
)

// ExportEML writes every email as a raw RFC 5322 message file named
// <email_id>.eml under dir, for downstream consumers that ingest mail
// instead of the tabular corpus.
func ExportEML(dir string, emails []*models.GeneratedEmail) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating eml directory: %w", err)
	}

	for _, e := range emails {
		if err := writeEML(dir, e); err != nil {
			return err
		}
	}
	return nil
}

func writeEML(dir string, e *models.GeneratedEmail) error {
	var h mail.Header
	h.SetDate(e.SentAt)
	h.SetMessageID(e.EmailID)
	h.SetAddressList("From", []*mail.Address{{Address: e.Sender}})
	h.SetAddressList("To", []*mail.Address{{Address: e.Recipient}})
	if e.CC != "" {
		h.SetAddressList("Cc", []*mail.Address{{Address: e.CC}})
	}
	h.SetSubject(e.Subject)

	f, err := os.Create(filepath.Join(dir, e.EmailID+".eml"))
	if err != nil {
		return fmt.Errorf("creating eml file for %s: %w", e.EmailID, err)
	}

	mw, err := mail.CreateSingleInlineWriter(f, h)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("writing eml headers for %s: %w", e.EmailID, err)
	}

	if _, err := io.WriteString(mw, e.Body); err != nil {
		_ = mw.Close()
		_ = f.Close()
		return fmt.Errorf("writing eml body for %s: %w", e.EmailID, err)
	}

	if err := mw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
