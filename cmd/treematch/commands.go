package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treematch"
	"github.com/npillmayer/treematch/match"
	"github.com/npillmayer/treematch/matchdbg"
	"github.com/npillmayer/treematch/pattern"
	"github.com/npillmayer/treematch/syntax"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	// commandRoot is the root command used to route to sub-commands
	commandRoot string = "treematch"

	// CommandMatch matches a pattern against a value
	CommandMatch string = "match"

	// CommandCheck type checks a pattern
	CommandCheck string = "check"

	// CommandBatch runs a file of queries
	CommandBatch string = "batch"
)

// traceKeys are the tracers switched to debug level by --trace.
var traceKeys = []string{"treematch.syntax", "treematch.pattern", "treematch.match", "treematch.list"}

func newRootCommand() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:           commandRoot,
		Short:         "Structural pattern matching for tree-shaped data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.LevelError
			if trace {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&trace, "trace", false, "Trace the parser, checker and matcher")
	cmd.AddCommand(
		newMatchCommand(),
		newCheckCommand(),
		newBatchCommand(),
	)
	return cmd
}

// --- match -----------------------------------------------------------------

type matchOpts struct {
	tree   bool
	limit  int
	expect []string
	dot    string
}

func newMatchCommand() *cobra.Command {
	opts := &matchOpts{}
	cmd := &cobra.Command{
		Use:   CommandMatch + " <pattern> <value>",
		Short: "Print every binding set under which a pattern matches a value.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "Render binding sets as trees")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Stop after n binding sets (0 = all)")
	cmd.Flags().StringSliceVar(&opts.expect, "expect", nil, "Capture names the pattern has to bind")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "Write a GraphViz diagram of the value and the first binding set to a file")
	return cmd
}

func runMatch(cmd *cobra.Command, opts *matchOpts, patternSrc, valueSrc string) error {
	c, err := treematch.Compile(patternSrc)
	if err != nil {
		return err
	}
	if opts.expect != nil {
		if err = pattern.CheckSignature(c, pattern.NewSignature(opts.expect...)); err != nil {
			return err
		}
	}
	v, err := syntax.ParseValue(valueSrc)
	if err != nil {
		return errors.Wrap(err, "cannot parse value")
	}
	out := cmd.OutOrStdout()
	seq := treematch.Matches(c, v, match.Limit(opts.limit))
	var first treematch.Bindings
	n := 0
	for bs, ok := seq.Next(); ok; bs, ok = seq.Next() {
		n++
		if n == 1 {
			first = bs
		}
		if opts.tree {
			fmt.Fprintf(out, "#%d\n%s", n, matchdbg.BindingsTree(bs))
		} else {
			fmt.Fprintf(out, "#%d %v\n", n, bs)
		}
	}
	if err = seq.Err(); err != nil {
		return errors.Wrap(err, "match aborted")
	}
	if n == 0 {
		fmt.Fprintln(out, "no match")
	}
	if opts.dot != "" {
		f, err := os.Create(opts.dot)
		if err != nil {
			return errors.Wrap(err, "cannot create GraphViz file")
		}
		defer f.Close()
		matchdbg.ToGraphViz(v, f, first)
	}
	return nil
}

// --- check -----------------------------------------------------------------

func newCheckCommand() *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   CommandCheck + " <pattern>",
		Short: "Type check a pattern and print its signature.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := treematch.Compile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if tree {
				fmt.Fprint(out, matchdbg.PatternTree(c.Pattern()))
			}
			fmt.Fprintf(out, "signature: %s\n", c.Signature())
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "Render the pattern as a tree")
	return cmd
}
