package main

import (
	"math/rand"
	"os"
	"time"

	"compliance-email-datagen/internal/config"
	"compliance-email-datagen/internal/finetune"
	"compliance-email-datagen/internal/generator"
	"compliance-email-datagen/internal/logging"
	"compliance-email-datagen/internal/output"
	"compliance-email-datagen/internal/registry"
)

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	reg := registry.Default()
	if err := reg.Validate(cfg); err != nil {
		logging.Log.Fatalf("Invalid generator setup: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	logging.Log.Infof("Generating %d synthetic emails (seed %d, noise rate %v)", cfg.TotalEmails, seed, cfg.NoiseRate)

	gen := generator.New(reg, cfg, rnd, time.Now())
	emails, err := gen.GenerateCorpus()
	if err != nil {
		logging.Log.Fatalf("Corpus generation failed: %v", err)
	}

	if err := output.SaveCorpus(cfg.Output.CorpusPath, emails); err != nil {
		logging.Log.Fatalf("Error writing corpus: %v", err)
	}
	logging.Log.Infof("Saved %d emails to %s", len(emails), cfg.Output.CorpusPath)
	output.LogSummary(emails)

	builder := finetune.NewBuilder(reg, cfg, rnd)
	samples, err := builder.Build()
	if err != nil {
		logging.Log.Fatalf("Fine-tuning generation failed: %v", err)
	}

	if err := output.SaveFinetune(cfg.Output.FinetunePath, samples); err != nil {
		logging.Log.Fatalf("Error writing fine-tuning corpus: %v", err)
	}
	logging.Log.Infof("Saved %d fine-tuning samples to %s", len(samples), cfg.Output.FinetunePath)

	if cfg.Output.EmlDir != "" {
		if err := output.ExportEML(cfg.Output.EmlDir, emails); err != nil {
			logging.Log.Fatalf("Error exporting raw messages: %v", err)
		}
		logging.Log.Infof("Exported %d raw messages to %s", len(emails), cfg.Output.EmlDir)
	}
}
