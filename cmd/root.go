package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     Config
)

var rootCmd = &cobra.Command{
	Use:   "pseudo",
	Short: "pseudo CLI — tokenizer, parser, and REPL for exam-style pseudocode",
	Long: `pseudo is the front end for exam-style pseudocode.

Commands:
  scan   Tokenize a source file and dump the token stream
  parse  Parse a source file and dump the syntax tree
  repl   Parse statements interactively
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cfgPath)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.pseudo.toml)")

	rootCmd.AddCommand(scanCmd, parseCmd, replCmd)
}

var (
	styleErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleLoc   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleType  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleIdent = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// render applies a style unless color output is disabled in the config.
func render(style lipgloss.Style, s string) string {
	if !cfg.Color {
		return s
	}
	return style.Render(s)
}
