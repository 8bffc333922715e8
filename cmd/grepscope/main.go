package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	apppkg "github.com/grepscope/grepscope/internal/app"
)

func newRootCmd() *cobra.Command {
	var (
		caseInsensitive bool
		extensions      []string
	)

	root := &cobra.Command{
		Use:   "grepscope [root]",
		Short: "Live regex search across text files in a terminal",
		Long: "Grepscope: type a regex and watch matching lines update on every keystroke.\n" +
			"Enter commits the current results and starts a new query below them; Escape exits.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := apppkg.Config{
				Root:            ".",
				CaseInsensitive: caseInsensitive,
				Extensions:      extensions,
			}
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			return runSession(cfg)
		},
	}

	root.Flags().BoolVarP(&caseInsensitive, "ignore-case", "i", false, "case-insensitive regex matching")
	root.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "file extensions to search (default: built-in text set)")

	return root
}

func runSession(cfg apppkg.Config) error {
	// UTF-8 fallback keeps non-ASCII content rendering on terminals with an
	// unknown charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
