/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sample.go
Description: The sample command: draws a corpus across the worker pool and prints
it as text, JSON or YAML.
*/

package commands

import (
	"time"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/spf13/cobra"
)

// RunSample samples a corpus and writes it to stdout, and to --save-dir when set
func RunSample(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	lang, err := resolveLanguage(args[0], cfg)
	if err != nil {
		return err
	}
	format, err := corpus.ParseFormat(cfg.Format)
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
	logger.LogSample(d.Language, d.N, st.Distinct, time.Since(start), map[string]interface{}{
		"seed":    cfg.Seed,
		"workers": sampler.Workers(),
	})
	logger.LogCorpus(d.Language, st.Distinct, st.MeanLength, st.Entropy, nil)
	logger.LogStats(sampler.GetStats())

	if dir, _ := cmd.Flags().GetString("save-dir"); dir != "" {
		path, err := corpus.Save(dir, d, format)
		if err != nil {
			return err
		}
		logger.Info("Corpus saved", map[string]interface{}{"path": path})
	}

	return corpus.Write(cmd.OutOrStdout(), d, format)
}
