package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/descape/descape/internal/logger"
	"github.com/descape/descape/internal/output"
	"github.com/descape/descape/pkg/batch"
	"github.com/descape/descape/pkg/cleaner/escape"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <path>",
	Short: "Reverse escaping in markdown files",
	Long: `Clean reverses backslash-escaping in a markdown file or in every
markdown file under a directory, rewriting files in place. Files with
no detected escaping are never touched.

Pass "-" as the path to read from stdin and write the cleaned text to
stdout instead of modifying files.

Examples:
  # Clean one file
  descape clean export.md

  # Preview a directory run without writing
  descape clean --dry-run docs/

  # Machine-readable report of a directory run
  descape clean --format json -o report.json docs/

  # Keep cleaning files as they change
  descape clean --watch docs/

  # Filter pipeline
  pbpaste | descape clean -`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.BoolP("dry-run", "n", false, "report changes without writing any file")
	flags.BoolP("verbose", "v", false, "log detected signals per file")
	flags.String("format", "text", "report format: text, json, jsonl, yaml")
	flags.StringP("output", "o", "", "write the report to a file (default: stdout)")
	flags.StringSlice("ext", nil, "markdown file extensions (default .md)")
	flags.BoolP("watch", "w", false, "watch the path and clean files as they change")
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := args[0]

	// Stdin filter mode
	if path == "-" {
		return runCleanStdin(cmd)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	extensions, _ := cmd.Flags().GetStringSlice("ext")
	watch, _ := cmd.Flags().GetBool("watch")

	runner := batch.New(batch.Options{
		DryRun:     dryRun,
		Extensions: extensions,
		Verbose:    verbose,
	})

	if watch {
		return runCleanWatch(ctx, runner, path)
	}

	result, err := runner.Run(ctx, path)
	if err != nil {
		logError("%v", err)
		return err
	}

	formatStr, _ := cmd.Flags().GetString("format")
	if formatStr == "text" || formatStr == "" {
		printTextReport(result, dryRun)
	} else if err := writeReport(cmd, result, output.Format(formatStr)); err != nil {
		logError("%v", err)
		return err
	}

	if !result.Success() {
		return fmt.Errorf("%d of %d files failed", result.FilesFailed, result.FilesProcessed)
	}
	return nil
}

// runCleanStdin reads the whole of stdin, cleans it, and writes the
// result to stdout. Stats go to stderr so the output stays pipeable.
func runCleanStdin(cmd *cobra.Command) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logError("reading stdin: %v", err)
		return err
	}

	res := escape.New().CleanWithStats(string(data))
	if _, err := io.WriteString(os.Stdout, res.Content); err != nil {
		logError("writing stdout: %v", err)
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logInfo("%s", res.Stats.String())
	}
	return nil
}

// runCleanWatch does an initial pass over the path, then keeps cleaning
// files as the filesystem reports changes, until interrupted.
func runCleanWatch(ctx context.Context, runner *batch.Runner, path string) error {
	if result, err := runner.Run(ctx, path); err != nil {
		// A watch target may legitimately start out with no markdown
		// files in it.
		logger.Debug("initial pass", "error", err)
	} else {
		printTextReport(result, false)
	}

	logInfo("watching %s (ctrl-c to stop)", path)
	err := runner.Watch(ctx, path, func(fr batch.FileResult) {
		switch {
		case fr.Error != "":
			logError("%s: %s", fr.Path, fr.Error)
		case fr.Cleaned:
			logInfo("%s: cleaned (%d categories)", fr.Path, fr.Changed)
		}
	})
	if err != nil {
		logError("%v", err)
	}
	return err
}

// printTextReport writes per-file status lines and a summary to stdout.
func printTextReport(result *batch.Result, dryRun bool) {
	if viper.GetBool("quiet") {
		return
	}

	for _, fr := range result.Files {
		switch {
		case fr.Error != "":
			fmt.Printf("%s: error: %s\n", fr.Path, fr.Error)
		case fr.Changed == 0:
			fmt.Printf("%s: unchanged\n", fr.Path)
		case dryRun:
			fmt.Printf("%s: would clean (%d categories)\n", fr.Path, fr.Changed)
		default:
			fmt.Printf("%s: cleaned (%d categories)\n", fr.Path, fr.Changed)
		}
	}

	verb := "cleaned"
	if dryRun {
		verb = "would clean"
	}
	fmt.Printf("%s %d of %d files (%d categories, %s), %d failed\n",
		verb, result.FilesCleaned, result.FilesProcessed,
		result.TotalChanges, humanize.Bytes(uint64(result.InputBytes)),
		result.FilesFailed)
}

// writeReport serializes the run result in the requested format. JSONL
// gets one record per file; JSON and YAML carry the whole report.
func writeReport(cmd *cobra.Command, result *batch.Result, format output.Format) error {
	outFile := os.Stdout
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		outFile = f
	}

	writer, err := output.NewWriter(outFile, format)
	if err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	if format == output.FormatJSONL {
		for _, fr := range result.Files {
			if err := writer.Write(fr); err != nil {
				return err
			}
		}
		return nil
	}
	return writer.Write(result)
}
