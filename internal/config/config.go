// Package config provides configuration structures and loading for CredAudit.
package config

// Config represents the complete application configuration.
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus" mapstructure:"corpus"`
	Dictionary DictionaryConfig `yaml:"dictionary" mapstructure:"dictionary"`
	Tables     TablesConfig     `yaml:"tables" mapstructure:"tables"`
	Processing ProcessingConfig `yaml:"processing" mapstructure:"processing"`
	Report     ReportConfig     `yaml:"report" mapstructure:"report"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// CorpusConfig describes where credential input files live and where the
// combined, deduplicated corpus is written.
type CorpusConfig struct {
	InputDir     string `yaml:"input_dir" mapstructure:"input_dir"`
	CombinedFile string `yaml:"combined_file" mapstructure:"combined_file"`
}

// DictionaryConfig points at the natural-language word list used for the
// predictability check.
type DictionaryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// TablesConfig describes the precomputed hash table sources.
// Order, when set, pins the processing order explicitly; otherwise sources
// are processed in lexical order of their file names.
type TablesConfig struct {
	Directory string   `yaml:"directory" mapstructure:"directory"`
	Order     []string `yaml:"order" mapstructure:"order"`
}

// ProcessingConfig represents scan processing settings.
type ProcessingConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ReportConfig represents report output settings.
type ReportConfig struct {
	OutputDir  string `yaml:"output_dir" mapstructure:"output_dir"`
	Charts     bool   `yaml:"charts" mapstructure:"charts"`
	SampleSize int    `yaml:"sample_size" mapstructure:"sample_size"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			InputDir:     "data",
			CombinedFile: "combined_output.txt",
		},
		Dictionary: DictionaryConfig{
			Path: "/usr/share/dict/words",
		},
		Tables: TablesConfig{
			Directory: "rainbow",
		},
		Processing: ProcessingConfig{
			Workers: 4,
		},
		Report: ReportConfig{
			OutputDir:  "report",
			Charts:     true,
			SampleSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}
