package config

import (
	"fmt"
	"os"

	"compliance-email-datagen/internal/models"

	"gopkg.in/yaml.v2"
)

// ConfigurationError is a fatal startup error: a generator invariant that
// must hold before any record is produced has been violated. There is no
// meaningful partial corpus, so callers abort the whole run on it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Errorf builds a ConfigurationError from a format string.
func Errorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// Default returns the reference configuration: the distributions, windows
// and rates of the original demo dataset.
func Default() *models.Config {
	return &models.Config{
		TotalEmails:   10000,
		DaysBack:      90,
		NoiseRate:     0.05,
		CCProbability: 0.1,
		LabelWeights: map[models.Label]float64{
			models.LabelClean:                 0.70,
			models.LabelInsiderTrading:        0.08,
			models.LabelConfidentialityBreach: 0.08,
			models.LabelPersonalTrading:       0.07,
			models.LabelInfoBarrierViolation:  0.07,
		},
		FinetuneCounts: map[models.Label]int{
			models.LabelClean:                 200,
			models.LabelInsiderTrading:        75,
			models.LabelConfidentialityBreach: 75,
			models.LabelPersonalTrading:       75,
			models.LabelInfoBarrierViolation:  75,
		},
		BusinessHours:      models.HourRange{Start: 8, End: 18},
		OffHours:           []int{6, 7, 19, 20, 21, 22},
		BarrierDepartments: []string{"Research", "Trading"},
		Output: models.OutputConfig{
			CorpusPath:   "data/emails_synthetic.csv",
			FinetunePath: "data/finetune_training.jsonl",
		},
	}
}

// Load reads the configuration from the specified YAML file, applies it on
// top of the reference defaults and validates the result. Map-valued fields
// (labelWeights, finetuneCounts) override the defaults key by key.
func Load(filepath string) (*models.Config, error) {
	configFile, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, err
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks every configuration invariant that can be verified without
// the employee/template registry. Roster-dependent checks live in the
// registry package.
func Validate(cfg *models.Config) error {
	if cfg.TotalEmails <= 0 {
		return Errorf("totalEmails must be positive, got %d", cfg.TotalEmails)
	}
	if cfg.DaysBack < 1 {
		return Errorf("daysBack must be at least 1, got %d", cfg.DaysBack)
	}
	if cfg.NoiseRate < 0 || cfg.NoiseRate > 1 {
		return Errorf("noiseRate must be in [0,1], got %v", cfg.NoiseRate)
	}
	if cfg.CCProbability < 0 || cfg.CCProbability > 1 {
		return Errorf("ccProbability must be in [0,1], got %v", cfg.CCProbability)
	}

	var totalWeight float64
	for label, weight := range cfg.LabelWeights {
		if !label.Valid() {
			return Errorf("unknown label %q in labelWeights", label)
		}
		if weight < 0 {
			return Errorf("negative weight %v for label %s", weight, label)
		}
		totalWeight += weight
	}
	if totalWeight <= 0 {
		return Errorf("labelWeights has zero total weight")
	}

	for label, count := range cfg.FinetuneCounts {
		if !label.Valid() {
			return Errorf("unknown label %q in finetuneCounts", label)
		}
		if count < 0 {
			return Errorf("negative count %d for label %s", count, label)
		}
	}

	if cfg.BusinessHours.Start < 0 || cfg.BusinessHours.End > 23 || cfg.BusinessHours.Start > cfg.BusinessHours.End {
		return Errorf("businessHours window [%d,%d] is not a valid hour range", cfg.BusinessHours.Start, cfg.BusinessHours.End)
	}
	if len(cfg.OffHours) == 0 {
		return Errorf("offHours must not be empty")
	}
	for _, h := range cfg.OffHours {
		if h < 0 || h > 23 {
			return Errorf("offHours value %d is not a valid hour", h)
		}
	}

	if len(cfg.BarrierDepartments) != 2 {
		return Errorf("barrierDepartments must name exactly two departments, got %d", len(cfg.BarrierDepartments))
	}
	if cfg.BarrierDepartments[0] == cfg.BarrierDepartments[1] {
		return Errorf("barrierDepartments must be two distinct departments, got %q twice", cfg.BarrierDepartments[0])
	}

	if cfg.Output.CorpusPath == "" {
		return Errorf("output.corpusPath must be set")
	}
	if cfg.Output.FinetunePath == "" {
		return Errorf("output.finetunePath must be set")
	}

	return nil
}
