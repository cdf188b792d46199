// File: settings.go
// Title: Typed btstring Settings
// Description: Resolves the btstring configuration (file, environment and
//              built-in defaults) into a validated, typed Settings value.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-08
// Modified: 2026-10-15

// Package settings turns raw configuration into the typed values used by
// the btstring command line.
package settings

import (
	"io"
	"strings"

	"github.com/bt-tools/btstring/foundation/core/config"
	mdwerror "github.com/bt-tools/btstring/foundation/core/error"
	"github.com/bt-tools/btstring/foundation/core/errors"
	"github.com/bt-tools/btstring/foundation/core/log"
	"github.com/bt-tools/btstring/foundation/utils/stringx"
)

// AppName names the discovered config files and the environment prefix
const AppName = "btstring"

// EnvPrefix prefixes environment overrides, e.g. BTSTRING_CHUNK_SIZE
const EnvPrefix = "BTSTRING"

// Settings holds the resolved configuration
type Settings struct {
	Split  SplitSettings
	Random RandomSettings
	Chunk  ChunkSettings
	Log    LogSettings

	// Source is the config file that was loaded, empty when none was found
	Source string
}

// SplitSettings configures balanced splitting and whole-word search
type SplitSettings struct {
	Punctuation   string
	DefaultGroups int
}

// RandomSettings configures token generation
type RandomSettings struct {
	Length  int
	Charset string
}

// ChunkSettings configures byte chunking
type ChunkSettings struct {
	Size int
}

// LogSettings configures the command line logger
type LogSettings struct {
	Level  log.Level
	Format log.Format
}

// Defaults returns the built-in configuration tree
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"split": map[string]interface{}{
			"punctuation":    stringx.DefaultPunctuation,
			"default_groups": 2,
		},
		"random": map[string]interface{}{
			"length":  32,
			"charset": stringx.URLSafe,
		},
		"chunk": map[string]interface{}{
			"size": 1024,
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
}

var rules = config.ValidationRules{
	"split.default_groups": {Required: true, Type: "int", Min: config.Bound(1)},
	"random.length":        {Required: true, Type: "int", Min: config.Bound(1), Max: config.Bound(1 << 16)},
	"random.charset":       {Required: true, Type: "string", Min: config.Bound(1)},
	"chunk.size":           {Required: true, Type: "int", Min: config.Bound(1)},
	"log.level":            {Required: true, Type: "string"},
	"log.format":           {Required: true, Type: "string"},
}

// Load resolves settings. An explicit path must exist; with an empty path
// the usual locations are searched and a missing file is not an error.
// Environment variables override both the file and the defaults.
func Load(path string, logger *log.Logger) (*Settings, error) {
	if logger == nil {
		logger = log.Discard()
	}

	var (
		cfg *config.Config
		err error
	)
	if stringx.IsBlank(path) {
		opts := config.DefaultDiscoveryOptions(AppName)
		opts.EnvPrefix = EnvPrefix
		opts.Defaults = Defaults()
		cfg, err = config.Discover(opts)
	} else {
		cfg, err = config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  Defaults(),
		})
	}
	if err != nil {
		return nil, err
	}

	s, err := FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("settings resolved", log.Fields{
		"source":         stringx.FirstNonBlank(s.Source, "defaults"),
		"default_groups": s.Split.DefaultGroups,
		"chunk_size":     s.Chunk.Size,
		"random_length":  s.Random.Length,
	})
	return s, nil
}

// FromConfig validates cfg and converts it to Settings. Every rule
// violation is reported in a single INVALID_CONFIG error.
func FromConfig(cfg *config.Config) (*Settings, error) {
	if result := cfg.Validate(rules); !result.Valid {
		return nil, errors.NewErrorBuilder(errors.ModuleSettings).
			Operation("validate").
			Messagef("invalid configuration: %s", strings.Join(result.Errors, "; ")).
			Code(errors.CodeInvalidConfig).
			Detail("violations", result.Errors).
			Severity(mdwerror.SeverityLow).
			Build()
	}

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, errors.ConfigInvalidValue("log.level", cfg.GetString("log.level"), err.Error())
	}
	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return nil, errors.ConfigInvalidValue("log.format", cfg.GetString("log.format"), err.Error())
	}

	return &Settings{
		Split: SplitSettings{
			Punctuation:   cfg.GetString("split.punctuation"),
			DefaultGroups: cfg.GetInt("split.default_groups"),
		},
		Random: RandomSettings{
			Length:  cfg.GetInt("random.length"),
			Charset: cfg.GetString("random.charset"),
		},
		Chunk:  ChunkSettings{Size: cfg.GetInt("chunk.size")},
		Log:    LogSettings{Level: level, Format: format},
		Source: cfg.FilePath(),
	}, nil
}

// Default returns settings built from Defaults alone
func Default() *Settings {
	s, err := FromConfig(config.NewFromMap(Defaults(), ""))
	if err != nil {
		// the built-in tree always validates
		panic(err)
	}
	return s
}

// Splitter returns a balanced splitter using the configured punctuation
func (s *Settings) Splitter() *stringx.BalancedSplitter {
	return stringx.NewBalancedSplitter(s.Split.Punctuation)
}

// Logger builds the command line logger. verbose forces debug level.
func (s *Settings) Logger(output io.Writer, verbose bool) *log.Logger {
	level := s.Log.Level
	if verbose && level > log.LevelDebug {
		level = log.LevelDebug
	}
	return BootLogger(output).
		WithFormat(s.Log.Format).
		WithLevel(level)
}

// BootLogger is the text logger used before settings are resolved
func BootLogger(output io.Writer) *log.Logger {
	return log.New().
		WithOutput(output).
		WithFormat(log.FormatText).
		WithName(AppName).
		WithLevel(log.LevelInfo)
}
