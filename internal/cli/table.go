/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/capitalone/radix/internal/table"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	Jobs   int
	Output string
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{}

	cmd := &cobra.Command{
		Use:   "table <file.yaml>",
		Short: "Convert a table of named constants",
		Long: `Convert every constant of a YAML table to the table's base.

Constants are converted concurrently. Results are printed in the global
--format; --output also writes them as a msgpack payload.`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				opts.Jobs = rootOpts.Config.Parallel.Jobs
			}
			return runTable(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "concurrent conversions, 0 for GOMAXPROCS (default from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write results as msgpack to this file")

	return cmd
}

func runTable(rootOpts *RootOptions, opts *TableOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := formatter.Logger()

	t, err := table.Load(path)
	if err != nil {
		return commandError(formatter, err.Error())
	}
	alphabet, err := rootOpts.Config.Alphabet()
	if err != nil {
		return commandError(formatter, fmt.Sprintf("alphabet: %v", err))
	}
	logger.Debug("loaded table", "path", path, "constants", len(t.Constants), "base", t.Base)

	results, err := table.Run(cmd.Context(), t, alphabet, opts.Jobs)
	if err != nil {
		return conversionError(formatter, err)
	}

	if opts.Output != "" {
		if err := writeMsgpack(opts.Output, results); err != nil {
			return commandError(formatter, err.Error())
		}
		logger.Debug("wrote payload", "path", opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		text := r.Text
		if text == "" {
			text = ordinalText(ConvertResult{Negative: r.Negative, Whole: r.Whole, Fraction: r.Fraction})
		}
		line := fmt.Sprintf("%s\t%s", r.Name, text)
		if !r.Exact {
			line += " " + formatter.Truncated()
		}
		if _, err := fmt.Fprintln(formatter.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

func writeMsgpack(path string, results []table.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return table.EncodeMsgpack(f, results)
}
