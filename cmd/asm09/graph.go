package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"asm09/internal/diagfmt"
	"asm09/internal/incgraph"
)

var graphCmd = &cobra.Command{
	Use:   "graph [flags] [dir]",
	Short: "Show the include graph of a directory",
	Long:  `Graph indexes a folder and prints its documents with includes first, parallel batches and include cycles`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().Bool("batches", false, "print independent batches instead of a flat order")
}

func runGraph(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot(args)
	if err != nil {
		return err
	}
	batches, _ := cmd.Flags().GetBool("batches")

	folder, _, err := scanFolder(cmd, root, false)
	if err != nil {
		return err
	}
	docs := folder.Documents()
	idx := incgraph.BuildIndex(docs)
	g, missing := incgraph.BuildGraph(idx, docs)
	topo := incgraph.ToposortKahn(g)

	opts := diagfmt.PrettyOpts{BaseDir: root, PathMode: diagfmt.PathModeRelative}
	name := opts.DisplayPath
	out := cmd.OutOrStdout()

	if batches {
		for i, batch := range topo.Batches {
			names := idx.Names(batch)
			for j := range names {
				names[j] = name(names[j])
			}
			fmt.Fprintf(out, "batch %d: %s\n", i+1, strings.Join(names, " "))
		}
	} else {
		for _, uri := range idx.Names(topo.Order) {
			fmt.Fprintln(out, name(uri))
		}
	}
	for _, link := range missing {
		fmt.Fprintf(out, "missing: %s:%d includes %s\n", name(link.From), link.Line+1, name(link.To))
	}
	if topo.Cyclic {
		names := idx.Names(topo.Cycles)
		for i := range names {
			names[i] = name(names[i])
		}
		return fmt.Errorf("include cycle: %s", strings.Join(names, " -> "))
	}
	return nil
}
