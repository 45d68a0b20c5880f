package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"compliance-email-datagen/internal/models"
)

// WriteFinetune writes the samples as line-delimited JSON to w, one object
// with exactly the prompt and completion fields per line, no header.
func WriteFinetune(w io.Writer, samples []models.FinetuneSample) error {
	enc := json.NewEncoder(w)
	for i, s := range samples {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("writing finetune sample %d: %w", i, err)
		}
	}
	return nil
}

// SaveFinetune creates the destination file (and its parent directory) and
// writes the fine-tuning corpus into it.
func SaveFinetune(path string, samples []models.FinetuneSample) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating finetune file: %w", err)
	}

	if err := WriteFinetune(f, samples); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
