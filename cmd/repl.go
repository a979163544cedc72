package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/pseudo-lang/pseudo"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse pseudocode statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func runRepl() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("pseudo REPL. Ctrl+C cancels input, Ctrl+D or :quit exits.")
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.TrimSpace(line) == ":quit" {
			return nil
		}
		evalLine(line)
	}
}

// evalLine parses a line as a statement, falling back to a bare expression,
// and echoes the resulting tree.
func evalLine(line string) {
	stmt, idents, err := pseudo.ParseStatement(line)
	if err == nil {
		fmt.Println(stmt.String())
		printIdentifiers(idents)
		return
	}
	expr, idents, exprErr := pseudo.ParseExpression(line)
	if exprErr == nil {
		fmt.Println(expr.String())
		printIdentifiers(idents)
		return
	}
	// Report the statement-level error; it covers the whole line.
	fmt.Fprintln(os.Stderr, render(styleErr, err.Error()))
}
