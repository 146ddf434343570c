/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: The report command: samples a corpus and writes markdown and HTML
summaries of it.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/reporting"
	"github.com/spf13/cobra"
)

// reportCanonical is how many canonical strings a report lists
const reportCanonical = 10

// RunReport samples a corpus and writes <language>_<timestamp>.md and .html
func RunReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	lang, err := resolveLanguage(args[0], cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	sc := cfg.Sampler()
	sc.Logger = logger.GetLogger()
	sampler := corpus.NewSampler(sc)

	start := time.Now()
	d, err := sampler.Sample(ctx, lang, cfg.Samples)
	if err != nil {
		return err
	}
	st := d.Stats()
	logger.LogSample(d.Language, d.N, st.Distinct, time.Since(start), nil)

	var canonical []string
	if seq, err := lang.AllStrings(); err == nil {
		canonical = language.Take(seq, reportCanonical)
	}

	gen := reporting.NewGenerator(cfg.OutputDir, logger.GetLogger())
	if top, err := cmd.Flags().GetInt("top"); err == nil {
		gen.SetTop(top)
	}
	paths, err := gen.Generate(gen.Build(d, canonical, sampler.GetStats()))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "📄 %s\n🌐 %s\n", paths.Markdown, paths.HTML)
	return nil
}
