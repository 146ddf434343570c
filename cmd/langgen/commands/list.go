/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: list.go
Description: The list command: prints the built-in languages matching an optional
glob pattern.
*/

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/kleascm/langgen/pkg/language/catalog"
	"github.com/spf13/cobra"
)

// ListLanguages prints the built-in languages and their descriptions
func ListLanguages(cmd *cobra.Command, args []string) error {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	names, err := catalog.Match(pattern)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no language matches %q", pattern)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range names {
		e, _ := catalog.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
	}
	return w.Flush()
}
