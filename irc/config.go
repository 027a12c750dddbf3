// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package irc

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"gopkg.in/yaml.v2"

	"github.com/ergochat/irctext/irc/logger"
	"github.com/ergochat/irctext/irc/textformat"
)

// here's how this works: exported (capitalized) members of the config structs
// are defined in the YAML file and deserialized directly from there. They may
// be postprocessed and overwritten by LoadConfig. Unexported (lowercase) members
// are derived from the exported members in LoadConfig.

const (
	// lines longer than this are rejected when no limit is configured
	defaultMaxLineBytes = 64 * 1024
)

// LinksConfig controls the URL detection pass of HTML conversion.
type LinksConfig struct {
	Enabled    *bool
	URLPattern string `yaml:"url-pattern"`
	pattern    string // effective pattern, "" when detection is disabled
}

// FormatConfig defines the HTML rendering options.
type FormatConfig struct {
	SpanFormatString  string `yaml:"span-format"`
	spanFormat        textformat.SpanFormat
	DefaultForeground string `yaml:"default-foreground"`
	DefaultBackground string `yaml:"default-background"`
	Palette           map[int]string
	Links             LinksConfig
}

// LimitsConfig defines the input limits.
type LimitsConfig struct {
	MaxLineBytesString string `yaml:"max-line-bytes"`
	MaxLineBytes       int
}

// Config defines the overall configuration.
type Config struct {
	Filename string

	Format  FormatConfig
	Limits  LimitsConfig
	Logging []logger.LoggingConfig
}

// LoadConfig loads the given YAML configuration file.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		// empty yaml document: all defaults
		config = new(Config)
	}

	config.Filename = filename

	// process format
	config.Format.spanFormat, err = textformat.SpanFormatFromString(config.Format.SpanFormatString)
	if err != nil {
		return nil, err
	}
	if config.Format.DefaultForeground == "" {
		config.Format.DefaultForeground = "black"
	}
	if config.Format.DefaultBackground == "" {
		config.Format.DefaultBackground = "transparent"
	}
	for index, name := range config.Format.Palette {
		if index < 0 {
			return nil, ErrColorIndexNegative
		}
		if name == "" {
			return nil, ErrColorNameEmpty
		}
	}

	// process links
	linksEnabled := config.Format.Links.Enabled == nil || *config.Format.Links.Enabled
	if linksEnabled {
		pattern := config.Format.Links.URLPattern
		if pattern == "" {
			pattern = textformat.DefaultURLPattern
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("Could not parse url-pattern: %s", err.Error())
		}
		config.Format.Links.pattern = pattern
	}

	// process limits
	if config.Limits.MaxLineBytesString == "" {
		config.Limits.MaxLineBytes = defaultMaxLineBytes
	} else {
		maxLineBytes, err := bytefmt.ToBytes(config.Limits.MaxLineBytesString)
		if err != nil {
			return nil, fmt.Errorf("Could not parse maximum line size (make sure it includes a unit of measurement): %s", err.Error())
		}
		if maxLineBytes == 0 {
			return nil, ErrMaxLineBytesTooSmall
		}
		config.Limits.MaxLineBytes = int(maxLineBytes)
	}

	// process logging
	var newLogConfigs []logger.LoggingConfig
	for _, logConfig := range config.Logging {
		// methods
		methods := make(map[string]bool)
		for _, method := range strings.Split(logConfig.Method, " ") {
			if len(method) > 0 {
				methods[strings.ToLower(method)] = true
			}
		}
		if methods["file"] && logConfig.Filename == "" {
			return nil, ErrLoggerFilenameMissing
		}
		logConfig.MethodFile = methods["file"]
		logConfig.MethodStdout = methods["stdout"]
		logConfig.MethodStderr = methods["stderr"]

		// levels
		level, exists := logger.LogLevelNames[strings.ToLower(logConfig.LevelString)]
		if !exists {
			return nil, fmt.Errorf("Could not translate log level [%s]", logConfig.LevelString)
		}
		logConfig.Level = level

		// types
		for _, typeStr := range strings.Split(logConfig.TypeString, " ") {
			if len(typeStr) == 0 {
				continue
			}
			if typeStr == "-" {
				return nil, ErrLoggerExcludeEmpty
			}
			if typeStr[0] == '-' {
				typeStr = typeStr[1:]
				logConfig.ExcludedTypes = append(logConfig.ExcludedTypes, typeStr)
			} else {
				logConfig.Types = append(logConfig.Types, typeStr)
			}
		}
		if len(logConfig.Types) < 1 {
			return nil, ErrLoggerHasNoTypes
		}

		newLogConfigs = append(newLogConfigs, logConfig)
	}
	config.Logging = newLogConfigs

	return config, nil
}

// DefaultConfig returns the configuration in effect when no config file is
// present: inline style spans, the standard palette, default link detection,
// and warnings on stderr.
func DefaultConfig() *Config {
	var config Config
	config.Format.spanFormat = textformat.SpanStyle
	config.Format.DefaultForeground = "black"
	config.Format.DefaultBackground = "transparent"
	config.Format.Links.pattern = textformat.DefaultURLPattern
	config.Limits.MaxLineBytes = defaultMaxLineBytes
	config.Logging = []logger.LoggingConfig{{
		Method:       "stderr",
		MethodStderr: true,
		Level:        logger.LogWarning,
		LevelString:  "warn",
		Types:        []string{"*"},
		TypeString:   "*",
	}}
	return &config
}

// Formatter assembles the text formatter this configuration describes.
func (config *Config) Formatter() *textformat.Formatter {
	palette := textformat.NewPalette()
	for index, name := range config.Format.Palette {
		palette.SetColorName(index, name)
	}
	return &textformat.Formatter{
		Palette:           palette,
		SpanFormat:        config.Format.spanFormat,
		URLPattern:        config.Format.Links.pattern,
		DefaultForeground: config.Format.DefaultForeground,
		DefaultBackground: config.Format.DefaultBackground,
	}
}
