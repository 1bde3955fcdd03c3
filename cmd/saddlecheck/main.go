// Command saddlecheck statically validates the scoped-borrowing discipline
// of one or more compiled binaries.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/radbuglet/saddle-go/internal/config"
	"github.com/radbuglet/saddle-go/internal/diagnostic"
	"github.com/radbuglet/saddle-go/internal/run"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	cfgFile    string
	format     string
	colorMode  string
	concurrent bool
	dotPath    string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:     "saddlecheck",
		Short:   "Statically validate saddle borrow rules on a compiled binary",
		Version: "0.1.0",
	}
	root.PersistentFlags().StringVar(&f.cfgFile, "config", "", "path to a .saddlecheck.yaml config file")
	root.PersistentFlags().StringVar(&f.format, "format", "", "output format: text, json, or yaml (default from config, else text)")
	root.PersistentFlags().StringVar(&f.colorMode, "color", "", "color mode: auto, always, or never (default from config, else auto)")
	root.PersistentFlags().BoolVar(&f.concurrent, "concurrent", false, "check multiple paths concurrently")

	root.AddCommand(newCheckCmd(f))
	return root
}

func newCheckCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Decode, build, and validate the scope graph embedded in each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, f, args)
		},
	}
	cmd.Flags().StringVar(&f.dotPath, "dot", "", "write a Graphviz DOT rendering of the scope graph of the first path that decoded successfully to this file")
	return cmd
}

func runCheck(cmd *cobra.Command, f *flags, paths []string) error {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("format") && f.format == "" {
		f.format = cfg.Format
	}
	if !cmd.Flags().Changed("color") && f.colorMode == "" {
		f.colorMode = cfg.Color
	}
	if !cmd.Flags().Changed("concurrent") {
		f.concurrent = cfg.Concurrent
	}

	applyColorMode(f.colorMode)

	logger, err := run.NewLogger(f.format == "json")
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	results, _ := run.Check(context.Background(), logger, paths, run.Options{Concurrent: f.concurrent})

	verdicts := make([]diagnostic.Verdict, len(results))
	for i, r := range results {
		verdicts[i] = diagnostic.FromResult(r)
	}

	if f.dotPath != "" {
		if err := writeDot(results, f.dotPath); err != nil {
			return err
		}
	}

	if err := render(f.format, verdicts); err != nil {
		return err
	}

	os.Exit(worstExitCode(verdicts))
	return nil
}

func render(format string, verdicts []diagnostic.Verdict) error {
	switch format {
	case "json":
		return diagnostic.RenderJSON(os.Stdout, verdicts)
	case "yaml":
		return diagnostic.RenderYAML(os.Stdout, verdicts)
	default:
		return diagnostic.RenderText(os.Stdout, verdicts, !color.NoColor)
	}
}

func writeDot(results []run.Result, path string) error {
	for _, r := range results {
		if r.Graph == nil {
			continue
		}
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()
		return r.Graph.Visualize(out)
	}
	return nil
}

func worstExitCode(verdicts []diagnostic.Verdict) int {
	worst := 0
	for _, v := range verdicts {
		if v.Success {
			continue
		}
		if ec := diagnostic.ExitCode(v.Kind); ec > worst {
			worst = ec
		}
	}
	return worst
}

func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto" leaves fatih/color's own TTY detection in place.
	}
}
