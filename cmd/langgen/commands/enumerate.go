/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enumerate.go
Description: The enumerate command: prints the first K strings of a language in
canonical order.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunEnumerate prints the canonical prefix of a language, one string per line.
// The empty string is printed as an empty line.
func RunEnumerate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	lang, err := resolveLanguage(args[0], cfg)
	if err != nil {
		return err
	}
	seq, err := lang.AllStrings()
	if err != nil {
		return fmt.Errorf("%s: %w", lang.Name(), err)
	}

	limit := cfg.EnumerateLimit
	out := cmd.OutOrStdout()
	count := 0
	if limit > 0 {
		for s := range seq {
			if _, err := fmt.Fprintln(out, s); err != nil {
				return err
			}
			count++
			if count == limit {
				break
			}
		}
	}

	logger.LogEnumeration(lang.Name(), count, limit, count < limit, nil)
	return nil
}
