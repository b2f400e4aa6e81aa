// Package config manages application configuration.
package config

// Config represents the application configuration.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig contains conversion defaults applied when the
// corresponding CLI flag is not given.
type ConvertConfig struct {
	StrictRefs         bool   `yaml:"strict_refs"`
	HTMLUnderline      bool   `yaml:"html_underline"`
	HTMLStrikethrough  bool   `yaml:"html_strikethrough"`
	PreserveWhitespace bool   `yaml:"preserve_whitespace"`
	Images             string `yaml:"images"` // inline, dir, skip
	ImagesDir          string `yaml:"images_dir,omitempty"`
}

// LoggingConfig controls the console logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // quiet, normal, debug
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			HTMLUnderline: true,
			Images:        "inline",
			ImagesDir:     "images",
		},
		Logging: LoggingConfig{
			Level: "normal",
		},
	}
}
