package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pseudo-lang/pseudo"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a pseudocode source file and dump the syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		block, idents, err := pseudo.ParseBlock(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, render(styleErr, err.Error()))
			return fmt.Errorf("parse failed")
		}
		fmt.Println(block.String())
		printIdentifiers(idents)
		return nil
	},
}

// printIdentifiers dumps the handle table so the #n references in the tree
// can be read back to their spellings.
func printIdentifiers(idents []string) {
	if len(idents) == 0 {
		return
	}
	fmt.Println(render(styleIdent, "identifiers:"))
	for h, spelling := range idents {
		fmt.Printf("  #%d = %s\n", h, render(styleIdent, spelling))
	}
}
