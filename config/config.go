// Package config loads analysis settings from YAML files and supplies
// the documented defaults when no file is given. Config files may
// override limits, thresholds, gazetteers, and the risk rule set.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mohini32/legal-AI-Reader/risk"
)

// Gazetteers are caller-supplied term lists that seed entity
// recognition.
type Gazetteers struct {
	// Parties are known organization or person names to tag as parties.
	Parties []string `mapstructure:"parties"`

	// LegalTerms are additional defined terms to tag as parties when
	// they appear in the text.
	LegalTerms []string `mapstructure:"legal_terms"`
}

// Config holds every tunable of the analysis pipeline.
type Config struct {
	// MaxFileSize is the largest accepted input, in bytes. Files at the
	// limit are accepted; larger files are rejected. Default: 50 MiB.
	MaxFileSize int64 `mapstructure:"max_file_size"`

	// MaxPages is the largest accepted page count. Default: 50.
	MaxPages int `mapstructure:"max_pages"`

	// SupportedExtensions is the filename extension allow-list.
	SupportedExtensions []string `mapstructure:"supported_extensions"`

	// ClassifyThreshold is the minimum clause classification confidence.
	// Default: 0.8.
	ClassifyThreshold float64 `mapstructure:"classify_threshold"`

	// AnswerThreshold is the minimum question-answer confidence.
	AnswerThreshold float64 `mapstructure:"answer_threshold"`

	// SummarySentences is the summary sentence budget. Default: 5.
	SummarySentences int `mapstructure:"summary_sentences"`

	// WeightCap is the summed severity weight that saturates the risk
	// score.
	WeightCap float64 `mapstructure:"weight_cap"`

	// Gazetteers seed the entity recognizer.
	Gazetteers Gazetteers `mapstructure:"gazetteers"`

	// Rules is the risk rule set. Empty means the built-in rules.
	Rules []risk.Rule `mapstructure:"-"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		MaxFileSize:         50 << 20,
		MaxPages:            50,
		SupportedExtensions: []string{".pdf", ".docx", ".doc", ".txt", ".html", ".htm", ".png", ".jpg", ".jpeg", ".tiff", ".bmp"},
		ClassifyThreshold:   0.8,
		AnswerThreshold:     0.4,
		SummarySentences:    5,
		WeightCap:           risk.DefaultWeightCap,
		Rules:               risk.DefaultRules(),
	}
}

// ruleSpec mirrors risk.Rule with string severity and category so rule
// files stay readable.
type ruleSpec struct {
	ID             string   `mapstructure:"id"`
	Category       string   `mapstructure:"category"`
	Severity       string   `mapstructure:"severity"`
	Pattern        string   `mapstructure:"pattern"`
	AbsentTerms    []string `mapstructure:"absent_terms"`
	Rationale      string   `mapstructure:"rationale"`
	Recommendation string   `mapstructure:"recommendation"`
}

// Load reads a YAML config file. Fields absent from the file keep their
// defaults; a "rules" list replaces the built-in rule set entirely.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if v.IsSet("rules") {
		var specs []ruleSpec
		if err := v.UnmarshalKey("rules", &specs); err != nil {
			return nil, fmt.Errorf("parsing rules in %s: %w", path, err)
		}
		rules, err := convertRules(specs)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Rules = rules
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func convertRules(specs []ruleSpec) ([]risk.Rule, error) {
	rules := make([]risk.Rule, 0, len(specs))
	for _, s := range specs {
		sev, err := risk.ParseSeverity(s.Severity)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", s.ID, err)
		}
		cat, err := risk.ParseCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", s.ID, err)
		}
		rules = append(rules, risk.Rule{
			ID:             s.ID,
			Category:       cat,
			Severity:       sev,
			Pattern:        s.Pattern,
			AbsentTerms:    s.AbsentTerms,
			Rationale:      s.Rationale,
			Recommendation: s.Recommendation,
		})
	}
	return rules, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be positive, got %d", c.MaxFileSize)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", c.MaxPages)
	}
	if c.ClassifyThreshold < 0 || c.ClassifyThreshold > 1 {
		return fmt.Errorf("classify_threshold must be in [0, 1], got %v", c.ClassifyThreshold)
	}
	if c.AnswerThreshold < 0 || c.AnswerThreshold > 1 {
		return fmt.Errorf("answer_threshold must be in [0, 1], got %v", c.AnswerThreshold)
	}
	if c.WeightCap < 0 {
		return fmt.Errorf("weight_cap must not be negative, got %v", c.WeightCap)
	}
	return nil
}
