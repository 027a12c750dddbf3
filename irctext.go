// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/ergochat/irc-go/ircfmt"

	"github.com/ergochat/irctext/irc"
	"github.com/ergochat/irctext/irc/logger"
	"github.com/ergochat/irctext/irc/textformat"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

const defaultConfigFile = "irctext.yaml"

func fileDoesNotExist(file string) bool {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return true
	}
	return false
}

// the config file is optional: when the default one is absent, built-in
// defaults apply. an explicitly named file must load.
func loadConfig(configfile string) *irc.Config {
	if configfile == defaultConfigFile && fileDoesNotExist(configfile) {
		return irc.DefaultConfig()
	}
	config, err := irc.LoadConfig(configfile)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}
	return config
}

func newLogManager(config *irc.Config) *logger.Manager {
	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}
	return logman
}

func runPipeline(config *irc.Config, logman *logger.Manager, process irc.LineFunc) {
	if err := irc.RunFilter(os.Stdin, os.Stdout, config.Limits.MaxLineBytes, process, logman); err != nil {
		logman.Error("main", err.Error())
		os.Exit(1)
	}
}

func main() {
	irc.SetVersionString(version, commit)
	usage := `irctext.
Usage:
	irctext html [--conf <filename>] [--classes] [--no-links] [--quiet]
	irctext strip [--conf <filename>] [--quiet]
	irctext escape
	irctext unescape
	irctext checkconf [--conf <filename>] [--quiet]
	irctext -h | --help
	irctext --version
Options:
	--conf <filename>  Configuration file to use [default: irctext.yaml].
	--classes          Generate span elements with class attributes.
	--no-links         Don't generate hyperlinks for URLs.
	--quiet            Don't show startup lines.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, irc.Ver)

	// escape/unescape translate the $-based escape notation; they take no
	// config, there is nothing to configure about them
	if arguments["escape"].(bool) || arguments["unescape"].(bool) {
		translate := ircfmt.Escape
		if arguments["unescape"].(bool) {
			translate = ircfmt.Unescape
		}
		config := irc.DefaultConfig()
		runPipeline(config, newLogManager(config), func(line string) (string, error) {
			return translate(line), nil
		})
		return
	}

	configfile := arguments["--conf"].(string)

	if arguments["checkconf"].(bool) {
		if _, err := irc.LoadConfig(configfile); err != nil {
			log.Fatal("Config file did not load successfully: ", err.Error())
		}
		if !arguments["--quiet"].(bool) {
			log.Println("config file passed the check: ", configfile)
		}
		return
	}

	config := loadConfig(configfile)
	logman := newLogManager(config)

	switch {
	case arguments["html"].(bool):
		formatter := config.Formatter()
		if arguments["--classes"].(bool) {
			formatter.SpanFormat = textformat.SpanClass
		}
		if arguments["--no-links"].(bool) {
			formatter.URLPattern = ""
		}
		if !arguments["--quiet"].(bool) {
			logman.Info("main", fmt.Sprintf("%s converting to %s spans", irc.Ver, formatter.SpanFormat.String()))
		}
		runPipeline(config, logman, formatter.ToHTML)
	case arguments["strip"].(bool):
		if !arguments["--quiet"].(bool) {
			logman.Info("main", fmt.Sprintf("%s stripping formatting", irc.Ver))
		}
		runPipeline(config, logman, func(line string) (string, error) {
			return textformat.ToPlainText(line), nil
		})
	}
}
