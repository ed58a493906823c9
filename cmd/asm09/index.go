package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"asm09/internal/diagfmt"
	"asm09/internal/export"
	"asm09/internal/source"
	"asm09/internal/trace"
	"asm09/internal/workspace"
)

var indexCmd = &cobra.Command{
	Use:   "index [flags] [dir]",
	Short: "Index every assembly source below a directory",
	Long: `Index scans a folder, parses every matching file, follows include links
and reports definitions and unresolved references per document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().Bool("progress", false, "show an interactive progress view")
	indexCmd.Flags().String("export", "", "write an index snapshot (.json, or .mp for msgpack)")
	indexCmd.Flags().StringSlice("ext", nil, "file extensions to index (default .asm,.s,.a,.inc,.def)")
	indexCmd.Flags().StringSlice("exclude", nil, "directory names to skip")
}

func scanOptions(cmd *cobra.Command) (workspace.ScanOptions, error) {
	var opts workspace.ScanOptions
	if cfg := commandConfig; cfg != nil {
		opts.Extensions = cfg.Workspace.Extensions
		opts.Exclude = cfg.Workspace.Exclude
		opts.Jobs = cfg.Workspace.Jobs
	}
	flags := cmd.Flags()
	if flags.Changed("ext") {
		exts, err := flags.GetStringSlice("ext")
		if err != nil {
			return opts, fmt.Errorf("failed to get ext flag: %w", err)
		}
		opts.Extensions = exts
	}
	if flags.Changed("exclude") {
		exclude, err := flags.GetStringSlice("exclude")
		if err != nil {
			return opts, fmt.Errorf("failed to get exclude flag: %w", err)
		}
		opts.Exclude = exclude
	}
	if cmd.Root().PersistentFlags().Changed("jobs") {
		jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
		if err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		opts.Jobs = jobs
	}
	return opts, nil
}

// scanFolder indexes root and returns the populated folder.
func scanFolder(cmd *cobra.Command, root string, progress bool) (*workspace.Folder, *workspace.ScanResult, error) {
	opts, err := scanOptions(cmd)
	if err != nil {
		return nil, nil, err
	}
	folder := workspace.NewFolder(source.PathToURI(root), source.DiskReader{})
	var res *workspace.ScanResult
	if progress && isTerminal(os.Stderr) {
		res, err = runScanWithUI(cmd.Context(), "indexing "+root, folder, opts)
	} else {
		res, err = folder.Scan(cmd.Context(), opts)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("index %s: %w", root, err)
	}
	return folder, res, nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot(args)
	if err != nil {
		return err
	}
	progress, _ := cmd.Flags().GetBool("progress")
	exportPath, _ := cmd.Flags().GetString("export")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	folder, res, err := scanFolder(cmd, root, progress)
	if err != nil {
		return err
	}

	tr := trace.FromContext(cmd.Context())
	reportScan(tr, root, res)

	out := cmd.OutOrStdout()
	if !quiet {
		printIndex(out, folder, res, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout), BaseDir: root})
	}
	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timing.String())
	}
	if exportPath != "" {
		if err := export.WriteFile(exportPath, export.Build(folder, &res.Timing)); err != nil {
			trace.Errorf(tr, trace.ScopeDriver, "index.export", "%s: %v", exportPath, err)
			return fmt.Errorf("export: %w", err)
		}
		if !quiet {
			fmt.Fprintf(out, "snapshot written to %s\n", exportPath)
		}
	}
	if len(res.Failed) > 0 {
		return fmt.Errorf("%d file(s) could not be read", len(res.Failed))
	}
	return nil
}

// reportScan logs every unreadable file and a summary of the scan.
func reportScan(tr trace.Tracer, root string, res *workspace.ScanResult) {
	for _, uri := range res.Failed {
		trace.Warnf(tr, trace.ScopeDriver, "index.unread", "%s could not be read", uri)
	}
	trace.Infof(tr, trace.ScopeDriver, "index.done", "%s: %d files, %d parsed, %d failed, %d followed",
		root, res.Files, res.Parsed, len(res.Failed), res.Followed)
}

func printIndex(out io.Writer, folder *workspace.Folder, res *workspace.ScanResult, opts diagfmt.PrettyOpts) {
	mgr := folder.Symbols()
	for _, doc := range folder.Documents() {
		diagfmt.FormatDocumentPretty(out, doc, mgr, opts)
		fmt.Fprintln(out)
	}
	impls, refs := mgr.Len()
	fmt.Fprintf(out, "%d files scanned, %d parsed, %d followed; %d definitions, %d references\n",
		res.Files, res.Parsed, res.Followed, impls, refs)
}
