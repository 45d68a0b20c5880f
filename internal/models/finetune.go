package models

// FinetuneSample is one prompt/completion pair of the fine-tuning corpus.
// Samples are built directly from templates with anonymized names, in a
// separate pass from the main corpus, and never carry label noise.
type FinetuneSample struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}
