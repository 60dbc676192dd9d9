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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/capitalone/radix"
	"github.com/capitalone/radix/digits"
	"github.com/capitalone/radix/natural"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	To        int
	From      int
	Precision int
	Alphabet  string
}

// ConvertResult is the data of a successful convert in JSON output.
type ConvertResult struct {
	Base     int      `json:"base"`
	Negative bool     `json:"negative"`
	Whole    []uint64 `json:"whole"`
	Fraction []uint64 `json:"fraction"`
	Exact    bool     `json:"exact"`
	Text     string   `json:"text"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <literal>",
		Short: "Convert a numeral to another base",
		Long: `Convert a numeral literal to another base.

The literal is read in base --from (10 by default) using the first --from
runes of the alphabet. The whole part is converted exactly; the fraction is
expanded to at most --precision digits and marked "(truncated)" when the
expansion was cut short. Bases larger than the alphabet are printed as
colon separated digit ordinals.`,
		Example: `  radix convert 1234.42 --to 16 --precision 8
  radix convert -- -ff.8 --from 16 --to 10`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("to") {
				return NewExitError(ExitCommandError, `required flag "to" not set`)
			}
			if !cmd.Flags().Changed("precision") {
				opts.Precision = rootOpts.Config.Convert.Precision
			}
			if !cmd.Flags().Changed("alphabet") {
				opts.Alphabet = rootOpts.Config.Convert.Alphabet
			}
			return runConvert(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.To, "to", "t", 0, "target base (required)")
	cmd.Flags().IntVarP(&opts.From, "from", "f", 10, "base of the literal")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 0, "fractional digits to print (default from config)")
	cmd.Flags().StringVar(&opts.Alphabet, "alphabet", "", "runes spelling digit ordinals (default from config)")

	return cmd
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, literal string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := formatter.Logger()

	if opts.Precision < 0 {
		return commandError(formatter, fmt.Sprintf("precision must not be negative, got %d", opts.Precision))
	}
	alphabet, err := digits.NewAlphabet(opts.Alphabet)
	if err != nil {
		return commandError(formatter, fmt.Sprintf("alphabet: %v", err))
	}

	x, err := parseLiteral(literal, opts.From, alphabet)
	if err != nil {
		return conversionError(formatter, err)
	}
	to, err := safecast.Conv[uint64](opts.To)
	if err != nil {
		return conversionError(formatter, fmt.Errorf("base %d: %w", opts.To, radix.ErrInvalidBase))
	}
	y, err := x.ToBase(natural.NewBig(to))
	if err != nil {
		return conversionError(formatter, err)
	}
	logger.Debug("converted", "from", opts.From, "to", opts.To, "numeral", y.String())

	result, err := render(y, alphabet, opts.Precision)
	if err != nil {
		return conversionError(formatter, err)
	}
	logger.Debug("expanded", "digits", len(result.Fraction), "exact", result.Exact)

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	line := result.Text
	if !result.Exact {
		line += " " + formatter.Truncated()
	}
	_, err = fmt.Fprintln(formatter.Writer, line)
	return err
}

func parseLiteral(literal string, from int, a digits.Alphabet) (radix.Numeral[natural.Big], error) {
	if from < 2 {
		return radix.Numeral[natural.Big]{}, fmt.Errorf("base %d: %w", from, radix.ErrInvalidBase)
	}
	prefix, err := a.Prefix(from)
	if err != nil {
		return radix.Numeral[natural.Big]{}, err
	}
	return radix.ParseRadix[natural.Big](literal, prefix)
}

func render(y radix.Numeral[natural.Big], a digits.Alphabet, precision int) (ConvertResult, error) {
	frac, exact := y.LossyFractionExact(precision)
	whole, err := digits.Ordinals(y.WholePart())
	if err != nil {
		return ConvertResult{}, err
	}
	fracOrds, err := digits.Ordinals(frac)
	if err != nil {
		return ConvertResult{}, err
	}
	base, ok := y.Base().Uint64()
	if !ok {
		return ConvertResult{}, fmt.Errorf("base %s: %w", y.Base(), radix.ErrInvalidBase)
	}
	b, err := safecast.Conv[int](base)
	if err != nil {
		return ConvertResult{}, err
	}

	result := ConvertResult{
		Base:     b,
		Negative: y.Negative(),
		Whole:    whole,
		Fraction: fracOrds,
		Exact:    exact,
	}
	if b <= a.Radix() {
		result.Text, err = y.TextDigits(a, frac)
		if err != nil {
			return ConvertResult{}, err
		}
	} else {
		result.Text = ordinalText(result)
	}
	return result, nil
}

// ordinalText spells a result whose base has no alphabet, e.g. "-1:0:0.30".
func ordinalText(r ConvertResult) string {
	var sb strings.Builder
	if r.Negative {
		sb.WriteByte('-')
	}
	joinOrdinals(&sb, r.Whole)
	if len(r.Fraction) > 0 {
		sb.WriteByte('.')
		joinOrdinals(&sb, r.Fraction)
	}
	return sb.String()
}

func joinOrdinals(sb *strings.Builder, ords []uint64) {
	for i, o := range ords {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatUint(o, 10))
	}
}

// Error codes reported in JSON output.
const (
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeCommand      = "command_error"
)

func commandError(f *OutputFormatter, message string) error {
	_ = f.Error(ErrCodeCommand, message)
	exitErr := NewExitError(ExitCommandError, message)
	exitErr.Reported = true
	return exitErr
}

func conversionError(f *OutputFormatter, err error) error {
	_ = f.Error(ErrCodeInvalidInput, err.Error())
	code := ExitFailure
	if !isInputError(err) {
		code = ExitCommandError
	}
	exitErr := WrapExitError(code, "conversion failed", err)
	exitErr.Reported = true
	return exitErr
}

func isInputError(err error) bool {
	return errors.Is(err, radix.ErrInvalidBase) ||
		errors.Is(err, radix.ErrDigitOutOfRange) ||
		errors.Is(err, radix.ErrMalformedLiteral) ||
		errors.Is(err, digits.ErrAlphabetTooSmall)
}
