package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/treematch"
	"github.com/npillmayer/treematch/pattern"
	"github.com/npillmayer/treematch/syntax"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchFile is the format of query files:
//
//     queries:
//       - name: fan-out
//         pattern: "{| cons(^, ^), [^, ^], x |}"
//         value: "cons([:a, :b], [:c, :d])"
//         signature: [x]
//         expect: 4
//
type batchFile struct {
	Queries []query `yaml:"queries"`
}

type query struct {
	Name      string   `yaml:"name"`
	Pattern   string   `yaml:"pattern"`
	Value     string   `yaml:"value"`
	Signature []string `yaml:"signature,omitempty"`
	Expect    *int     `yaml:"expect,omitempty"`
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   CommandBatch + " <file.yaml>",
		Short: "Check and run a file of named queries.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "cannot read query file")
			}
			return runBatch(cmd.OutOrStdout(), src)
		},
	}
}

// runBatch compiles every query of a batch file before running any of them.
// Errors are collected per phase, such that a single run reports all the
// broken queries.
func runBatch(out io.Writer, src []byte) error {
	var batch batchFile
	if err := yaml.Unmarshal(src, &batch); err != nil {
		return errors.Wrap(err, "malformed query file")
	}
	var result *multierror.Error
	checked := make([]treematch.Checked, len(batch.Queries))
	for i, q := range batch.Queries {
		c, err := treematch.Compile(q.Pattern)
		if err == nil && q.Signature != nil {
			err = pattern.CheckSignature(c, pattern.NewSignature(q.Signature...))
		}
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "query %q", q.Name))
			continue
		}
		checked[i] = c
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	for i, q := range batch.Queries {
		v, err := syntax.ParseValue(q.Value)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "query %q: cannot parse value", q.Name))
			continue
		}
		seq := treematch.Matches(checked[i], v)
		n := len(seq.Collect())
		if err = seq.Err(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "query %q", q.Name))
			continue
		}
		if q.Expect != nil && *q.Expect != n {
			result = multierror.Append(result, errors.Errorf("query %q: expected %d results, got %d",
				q.Name, *q.Expect, n))
			fmt.Fprintf(out, "FAIL %s: %d results\n", q.Name, n)
			continue
		}
		fmt.Fprintf(out, "ok   %s: %d results\n", q.Name, n)
	}
	return result.ErrorOrNil()
}
