/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for langgen. Lists the built-in stimulus
languages, samples corpora from them, enumerates their canonical strings, checks
grammars and writes corpus reports.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/langgen/cmd/langgen/commands"
	"github.com/kleascm/langgen/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "langgen",
		Short: "langgen - weighted grammar stimulus generator",
		Long: `langgen generates strings from formal languages for learning experiments.
Each language can sample strings from a weighted grammar or combinator, list its
members in canonical order (shortest first), and aggregate samples into corpora.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Configuration file path")
	pf.Int64("seed", 1, "Base random seed")
	pf.Int("workers", 0, "Number of sampling workers (0 = GOMAXPROCS)")
	pf.IntP("samples", "n", 1000, "Number of strings to sample")
	pf.Int("max-rejections", 100000, "Retry cap for rejection-sampled languages")

	pf.String("log-level", "info", "Logging level (debug, info, warn, error)")
	pf.String("log-format", "custom", "Log format (text, json, custom)")
	pf.String("log-dir", "", "Log file directory (empty = console only)")
	pf.Int("log-max-files", 10, "Maximum number of log files to keep")

	viper.BindPFlag("config", pf.Lookup("config"))
	viper.BindPFlag(config.KeySeed, pf.Lookup("seed"))
	viper.BindPFlag(config.KeyWorkers, pf.Lookup("workers"))
	viper.BindPFlag(config.KeySamples, pf.Lookup("samples"))
	viper.BindPFlag(config.KeyMaxRejections, pf.Lookup("max-rejections"))
	viper.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	viper.BindPFlag(config.KeyLogFormat, pf.Lookup("log-format"))
	viper.BindPFlag(config.KeyLogDir, pf.Lookup("log-dir"))
	viper.BindPFlag(config.KeyLogMaxFiles, pf.Lookup("log-max-files"))

	// list
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list [pattern]",
		Short: "List built-in languages",
		Long: `List the built-in languages with their descriptions. An optional glob
pattern such as 'AnB*' or 'Gomez{2,6}' filters the names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.ListLanguages,
	})

	// sample
	sampleCmd := &cobra.Command{
		Use:   "sample <language|grammar.yaml>",
		Short: "Sample a corpus from a language",
		Long: `Draw N strings from a language across a pool of workers and print the
frequency table. The same seed and worker count reproduce the same corpus.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunSample,
	}
	sampleCmd.Flags().String("format", "text", "Output format (text, json, yaml)")
	sampleCmd.Flags().Float64("alpha", 0.99, "Noise parameter recorded with the corpus")
	sampleCmd.Flags().String("save-dir", "", "Also save the corpus into this directory")
	viper.BindPFlag(config.KeyFormat, sampleCmd.Flags().Lookup("format"))
	viper.BindPFlag(config.KeyAlpha, sampleCmd.Flags().Lookup("alpha"))
	rootCmd.AddCommand(sampleCmd)

	// enumerate
	enumerateCmd := &cobra.Command{
		Use:   "enumerate <language|grammar.yaml>",
		Short: "List a language's first strings in canonical order",
		Long: `Print the first K members of a language, shortest first. Finite languages
stop early once every member has been printed.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunEnumerate,
	}
	enumerateCmd.Flags().IntP("limit", "k", 20, "Number of strings to print")
	viper.BindPFlag(config.KeyEnumerateLimit, enumerateCmd.Flags().Lookup("limit"))
	rootCmd.AddCommand(enumerateCmd)

	// check
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the built-in languages or a grammar file",
		Long: `Build every built-in language, sample from it and verify its canonical
enumeration. With --grammar, validate a YAML grammar file instead.`,
		Args: cobra.NoArgs,
		RunE: commands.RunCheck,
	}
	checkCmd.Flags().String("grammar", "", "YAML grammar file to validate")
	rootCmd.AddCommand(checkCmd)

	// report
	reportCmd := &cobra.Command{
		Use:   "report <language|grammar.yaml>",
		Short: "Write a markdown and HTML corpus report",
		Long: `Sample a corpus and write <language>_<timestamp>.md and .html summaries
with the corpus statistics and most frequent strings.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunReport,
	}
	reportCmd.Flags().String("out", "./reports", "Directory for report files")
	reportCmd.Flags().Int("top", 25, "Number of frequent strings to list")
	viper.BindPFlag(config.KeyOutputDir, reportCmd.Flags().Lookup("out"))
	rootCmd.AddCommand(reportCmd)

	return rootCmd
}
