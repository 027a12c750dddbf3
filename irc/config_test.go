// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package irc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"

	"github.com/ergochat/irctext/irc/logger"
	"github.com/ergochat/irctext/irc/textformat"
)

func loadConfigString(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "irctext.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return LoadConfig(path)
}

func TestLoadConfigMinimal(t *testing.T) {
	config, err := loadConfigString(t, `
logging:
  - method: stderr
    type: "*"
    level: warn
`)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	if config.Format.spanFormat != textformat.SpanStyle {
		t.Errorf("expected style spans by default, got %v", config.Format.spanFormat)
	}
	if config.Format.DefaultForeground != "black" || config.Format.DefaultBackground != "transparent" {
		t.Errorf("unexpected default colors: %s, %s", config.Format.DefaultForeground, config.Format.DefaultBackground)
	}
	if config.Format.Links.pattern != textformat.DefaultURLPattern {
		t.Errorf("expected the default url-pattern, got %q", config.Format.Links.pattern)
	}
	if config.Limits.MaxLineBytes != defaultMaxLineBytes {
		t.Errorf("expected the default line limit, got %d", config.Limits.MaxLineBytes)
	}

	expectedLogging := []logger.LoggingConfig{{
		Method:       "stderr",
		MethodStderr: true,
		TypeString:   "*",
		Types:        []string{"*"},
		LevelString:  "warn",
		Level:        logger.LogWarning,
	}}
	if diff := deep.Equal(config.Logging, expectedLogging); diff != nil {
		t.Error(diff)
	}
}

func TestLoadConfigFull(t *testing.T) {
	config, err := loadConfigString(t, `
format:
  span-format: class
  default-foreground: "#000"
  default-background: "#fff"
  palette:
    4: "#ff0000"
    8: "#ffff00"
  links:
    enabled: true
    url-pattern: '\bgo/[a-z]+'

limits:
  max-line-bytes: 1m

logging:
  - method: file stderr
    filename: irctext.log
    type: "* -links"
    level: debug
`)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	if config.Format.spanFormat != textformat.SpanClass {
		t.Errorf("expected class spans, got %v", config.Format.spanFormat)
	}
	if diff := deep.Equal(config.Format.Palette, map[int]string{4: "#ff0000", 8: "#ffff00"}); diff != nil {
		t.Error(diff)
	}
	if config.Format.Links.pattern != `\bgo/[a-z]+` {
		t.Errorf("unexpected url-pattern: %q", config.Format.Links.pattern)
	}
	if config.Limits.MaxLineBytes != 1024*1024 {
		t.Errorf("expected a 1MB line limit, got %d", config.Limits.MaxLineBytes)
	}

	expectedLogging := []logger.LoggingConfig{{
		Method:        "file stderr",
		MethodFile:    true,
		MethodStderr:  true,
		Filename:      "irctext.log",
		TypeString:    "* -links",
		Types:         []string{"*"},
		ExcludedTypes: []string{"links"},
		LevelString:   "debug",
		Level:         logger.LogDebug,
	}}
	if diff := deep.Equal(config.Logging, expectedLogging); diff != nil {
		t.Error(diff)
	}
}

func TestConfigFormatter(t *testing.T) {
	config, err := loadConfigString(t, `
format:
  span-format: class
  default-foreground: inherit
  palette:
    4: "#ff0000"

logging:
  - method: stderr
    type: "*"
    level: warn
`)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	f := config.Formatter()
	if f.SpanFormat != textformat.SpanClass {
		t.Errorf("formatter did not inherit the span format")
	}
	if f.URLPattern != textformat.DefaultURLPattern {
		t.Errorf("formatter did not inherit the url pattern")
	}
	if f.DefaultForeground != "inherit" {
		t.Errorf("formatter did not inherit the default foreground")
	}
	// configured entries override the standard palette, the rest survive
	if name := f.Palette.ColorName(4, "black"); name != "#ff0000" {
		t.Errorf("palette override missing, got %q", name)
	}
	if name := f.Palette.ColorName(8, "black"); name != "yellow" {
		t.Errorf("standard palette entry missing, got %q", name)
	}
}

func TestLoadConfigLinksDisabled(t *testing.T) {
	config, err := loadConfigString(t, `
format:
  links:
    enabled: false
    url-pattern: '\bgo/[a-z]+'

logging:
  - method: stderr
    type: "*"
    level: warn
`)
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}

	if config.Format.Links.pattern != "" {
		t.Errorf("links disabled but pattern is %q", config.Format.Links.pattern)
	}
	if config.Formatter().URLPattern != "" {
		t.Errorf("links disabled but formatter still has a pattern")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	baseLogging := `
logging:
  - method: stderr
    type: "*"
    level: warn
`

	for _, testcase := range []struct {
		desc string
		yaml string
	}{
		{"invalid yaml", "format: ["},
		{"invalid span format", "format:\n  span-format: xml\n" + baseLogging},
		{"negative palette index", "format:\n  palette:\n    -1: red\n" + baseLogging},
		{"empty palette name", "format:\n  palette:\n    4: \"\"\n" + baseLogging},
		{"invalid url pattern", "format:\n  links:\n    url-pattern: '('\n" + baseLogging},
		{"line limit without a unit", "limits:\n  max-line-bytes: \"65536\"\n" + baseLogging},
		{"zero line limit", "limits:\n  max-line-bytes: 0k\n" + baseLogging},
		{"file logging without filename", "logging:\n  - method: file\n    type: \"*\"\n    level: warn"},
		{"unknown log level", "logging:\n  - method: stderr\n    type: \"*\"\n    level: loud"},
		{"empty exclude", "logging:\n  - method: stderr\n    type: \"- *\"\n    level: warn"},
		{"only excludes", "logging:\n  - method: stderr\n    type: \"-links\"\n    level: warn"},
	} {
		if _, err := loadConfigString(t, testcase.yaml); err == nil {
			t.Errorf("expected %s to be rejected", testcase.desc)
		}
	}
}

func TestLoadConfigSentinelErrors(t *testing.T) {
	_, err := loadConfigString(t, "format:\n  palette:\n    -1: red\nlogging:\n  - method: stderr\n    type: \"*\"\n    level: warn")
	if err != ErrColorIndexNegative {
		t.Errorf("expected ErrColorIndexNegative, got %v", err)
	}

	_, err = loadConfigString(t, "logging:\n  - method: file\n    type: \"*\"\n    level: warn")
	if err != ErrLoggerFilenameMissing {
		t.Errorf("expected ErrLoggerFilenameMissing, got %v", err)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	// an empty config file is not an error, it means all defaults
	config, err := loadConfigString(t, "")
	if err != nil {
		t.Fatalf("could not load empty config: %v", err)
	}
	if config.Format.Links.pattern != textformat.DefaultURLPattern {
		t.Errorf("expected the default url-pattern, got %q", config.Format.Links.pattern)
	}
	if config.Limits.MaxLineBytes != defaultMaxLineBytes {
		t.Errorf("expected the default line limit, got %d", config.Limits.MaxLineBytes)
	}
	if len(config.Logging) != 0 {
		t.Errorf("expected no loggers, got %d", len(config.Logging))
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-file.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	f := config.Formatter()
	if f.SpanFormat != textformat.SpanStyle {
		t.Errorf("unexpected default span format")
	}
	if f.URLPattern != textformat.DefaultURLPattern {
		t.Errorf("unexpected default url pattern")
	}
	if config.Limits.MaxLineBytes != defaultMaxLineBytes {
		t.Errorf("unexpected default line limit")
	}
	if len(config.Logging) != 1 || !config.Logging[0].MethodStderr {
		t.Errorf("default logging should go to stderr")
	}
}
