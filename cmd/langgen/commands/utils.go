/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the langgen commands. Provides configuration
loading, logging setup and language resolution used by every command.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kleascm/langgen/pkg/config"
	"github.com/kleascm/langgen/pkg/grammar"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/language/catalog"
	"github.com/kleascm/langgen/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from flags, the config file and environment
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper(), viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// SetupLogging creates the command logger on stderr
func SetupLogging(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.NewLogger(cfg.Logger(), os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// setup runs LoadConfig and SetupLogging
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := SetupLogging(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// isGrammarFile reports whether arg names a YAML grammar file
func isGrammarFile(arg string) bool {
	ext := strings.ToLower(filepath.Ext(arg))
	return ext == ".yaml" || ext == ".yml"
}

// loadGrammarLanguage builds a language from a YAML grammar file
func loadGrammarLanguage(path string) (*language.GrammarLanguage, error) {
	f, err := grammar.LoadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return language.FromGrammar(name, f.Terminals, g)
}

// resolveLanguage turns a command argument into a language: a grammar file path
// or a built-in name
func resolveLanguage(arg string, cfg *config.Config) (language.Language, error) {
	if isGrammarFile(arg) {
		return loadGrammarLanguage(arg)
	}
	return catalog.Get(arg, catalog.WithMaxRejections(cfg.MaxRejections))
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
