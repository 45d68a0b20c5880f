package models

// Config represents the generator configuration
type Config struct {
	TotalEmails        int               `yaml:"totalEmails"`
	DaysBack           int               `yaml:"daysBack"`
	NoiseRate          float64           `yaml:"noiseRate"`
	CCProbability      float64           `yaml:"ccProbability"`
	Seed               int64             `yaml:"seed"`
	LabelWeights       map[Label]float64 `yaml:"labelWeights"`
	FinetuneCounts     map[Label]int     `yaml:"finetuneCounts"`
	BusinessHours      HourRange         `yaml:"businessHours"`
	OffHours           []int             `yaml:"offHours"`
	BarrierDepartments []string          `yaml:"barrierDepartments"`
	Output             OutputConfig      `yaml:"output"`
}

// HourRange is an inclusive hour-of-day window
type HourRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// OutputConfig represents the destination paths of the generated artifacts.
// EmlDir is optional; when set, every corpus email is additionally exported
// as a raw .eml file under that directory.
type OutputConfig struct {
	CorpusPath   string `yaml:"corpusPath"`
	FinetunePath string `yaml:"finetunePath"`
	EmlDir       string `yaml:"emlDir"`
}
