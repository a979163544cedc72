package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pseudo-lang/pseudo"
)

var scanCmd = &cobra.Command{
	Use:   "scan FILE",
	Short: "Tokenize a pseudocode source file and dump the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		tokens, errs := pseudo.Scan(src)
		for _, t := range tokens {
			fmt.Printf("%s\t%s\t%q\n",
				render(styleLoc, t.Loc.String()),
				render(styleType, string(t.Type)),
				t.Lexeme)
		}
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, render(styleErr, e.Error()))
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d lexical error(s)", len(errs))
		}
		return nil
	},
}

// readSource reads a source file, warning on an unconventional extension.
// Hard enforcement would break piped and scratch files, so it stays a
// warning.
func readSource(path string) (string, error) {
	if filepath.Ext(path) != ".pseudo" {
		fmt.Fprintf(os.Stderr, "warning: %s does not have a .pseudo extension\n", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
