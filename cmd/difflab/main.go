// difflab — line-diff toolkit
//
// Usage:
//
//	difflab diff a.txt b.txt     # diff two files
//	difflab url URL1 URL2        # diff the text content of two pages
//	difflab version              # show version
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/RahilKothari9/difflab/pkg/differ"
	"github.com/RahilKothari9/difflab/pkg/fetch"
	"github.com/RahilKothari9/difflab/pkg/render"
)

var version = "dev"

// exitCode follows the classic diff convention: 0 no differences,
// 1 differences found, 2 trouble.
var exitCode int

func main() {
	rootCmd := &cobra.Command{
		Use:           "difflab",
		Short:         "Line-diff toolkit",
		Long:          "difflab computes line-by-line diffs between files, texts and web pages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(urlCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "difflab: %v\n", err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}

type outputFlags struct {
	asJSON    bool
	statsOnly bool
	noColor   bool
	pngPath   string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "emit the full diff as JSON")
	cmd.Flags().BoolVar(&f.statsOnly, "stats", false, "print only the change summary")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVarP(&f.pngPath, "output", "o", "", "write the diff as a PNG image to this path")
}

func diffCmd() *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "diff <fileA> <fileB>",
		Short: "Diff two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			modified, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}
			title := fmt.Sprintf("%s → %s", args[0], args[1])
			return emit(differ.Compute(string(original), string(modified)), title, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func urlCmd() *cobra.Command {
	var flags outputFlags
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "url <urlA> <urlB>",
		Short: "Diff the text content of two web pages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			opts := fetch.DefaultOptions()
			opts.Timeout = timeout

			fetcher := fetch.NewHTTPFetcher()
			left, err := fetcher.Fetch(ctx, args[0], opts)
			if err != nil {
				return err
			}
			right, err := fetcher.Fetch(ctx, args[1], opts)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s → %s", args[0], args[1])
			return emit(differ.Compute(left.Text, right.Text), title, flags)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "per-request fetch timeout")
	flags.register(cmd)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("difflab %s\n", version)
		},
	}
}

func emit(result differ.Result, title string, flags outputFlags) error {
	if result.HasChanges() {
		exitCode = 1
	}

	if flags.pngPath != "" {
		if err := render.NewRenderer().RenderPNG(result, title, flags.pngPath); err != nil {
			return err
		}
		fmt.Printf("🖼  Wrote %s (%s)\n", flags.pngPath, result.Summary())
		return nil
	}

	if flags.asJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if flags.statsOnly {
		fmt.Println(result.Summary())
		return nil
	}

	printDiff(result, flags.noColor)
	return nil
}

func printDiff(result differ.Result, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)

	for _, ln := range result.Lines {
		switch ln.Type {
		case differ.Added:
			added.Printf("+ %s\n", ln.Text)
		case differ.Removed:
			removed.Printf("- %s\n", ln.Text)
		default:
			fmt.Printf("  %s\n", ln.Text)
		}
	}
	if result.HasChanges() {
		fmt.Printf("\n%s\n", result.Summary())
	}
}
