package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test corpus defaults
	if cfg.Corpus.InputDir != "data" {
		t.Errorf("expected input_dir 'data', got %s", cfg.Corpus.InputDir)
	}
	if cfg.Corpus.CombinedFile != "combined_output.txt" {
		t.Errorf("expected combined_file 'combined_output.txt', got %s", cfg.Corpus.CombinedFile)
	}

	// Test dictionary defaults
	if cfg.Dictionary.Path != "/usr/share/dict/words" {
		t.Errorf("expected dictionary path '/usr/share/dict/words', got %s", cfg.Dictionary.Path)
	}

	// Test tables defaults
	if cfg.Tables.Directory != "rainbow" {
		t.Errorf("expected tables directory 'rainbow', got %s", cfg.Tables.Directory)
	}
	if len(cfg.Tables.Order) != 0 {
		t.Errorf("expected no explicit table order by default, got %v", cfg.Tables.Order)
	}

	// Test processing defaults
	if cfg.Processing.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Processing.Workers)
	}

	// Test report defaults
	if cfg.Report.OutputDir != "report" {
		t.Errorf("expected report output_dir 'report', got %s", cfg.Report.OutputDir)
	}
	if !cfg.Report.Charts {
		t.Errorf("expected charts enabled by default")
	}
	if cfg.Report.SampleSize != 10 {
		t.Errorf("expected sample_size 10, got %d", cfg.Report.SampleSize)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected logging format 'json', got %s", cfg.Logging.Format)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("debug", "text", 8, true)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected format 'text', got %s", cfg.Logging.Format)
	}
	if cfg.Processing.Workers != 8 {
		t.Errorf("expected workers 8, got %d", cfg.Processing.Workers)
	}
	if cfg.Report.Charts {
		t.Errorf("expected charts disabled after --no-charts override")
	}
}

func TestApplyOverridesZeroValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("", "", 0, false)

	if cfg.Logging.Level != "info" {
		t.Errorf("empty override should keep level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Processing.Workers != 4 {
		t.Errorf("zero override should keep workers 4, got %d", cfg.Processing.Workers)
	}
	if !cfg.Report.Charts {
		t.Errorf("false override should keep charts enabled")
	}
}
