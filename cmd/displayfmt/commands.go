package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusfood/displayfmt/internal/output"
	"github.com/campusfood/displayfmt/pkg/decimal"
)

// each runs render over every argument and writes the results.
func (a *app) each(cmd *cobra.Command, operation string, args []string, render func(string) (string, error)) error {
	results := make([]output.Result, 0, len(args))
	for _, arg := range args {
		out, err := render(arg)
		if err != nil {
			return err
		}
		results = append(results, output.Result{
			Operation: operation,
			Input:     arg,
			Locale:    a.formatter.Locale().Tag,
			Output:    out,
		})
	}
	return output.Write(cmd.OutOrStdout(), a.opts.format, results)
}

func (a *app) priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "price <amount>...",
		Short:   "Format amounts as whole-unit currency",
		Example: "  displayfmt price 1250000 1999.99\n  displayfmt price -- -500",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, "price", args, func(s string) (string, error) {
				amount, err := decimal.NewMoneyFromString(s)
				if err != nil {
					return "", fmt.Errorf("invalid amount %q: %w", s, err)
				}
				return a.formatter.FormatPriceMoney(amount), nil
			})
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <iso-timestamp>...",
		Short: "Format timestamps as calendar dates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, "date", args, func(s string) (string, error) {
				return a.formatter.FormatDate(s), nil
			})
		},
	}
}

func (a *app) dateTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datetime <iso-timestamp>...",
		Short: "Format timestamps as dates with a 24-hour clock time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, "datetime", args, func(s string) (string, error) {
				return a.formatter.FormatDateTime(s), nil
			})
		},
	}
}

func (a *app) truncateCmd() *cobra.Command {
	var maxLength int
	cmd := &cobra.Command{
		Use:   "truncate --max N <text>...",
		Short: "Shorten text to N characters followed by an ellipsis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, "truncate", args, func(s string) (string, error) {
				return a.formatter.TruncateText(s, maxLength), nil
			})
		},
	}
	cmd.Flags().IntVarP(&maxLength, "max", "n", 0, "maximum number of characters kept")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <code>...",
		Short: "Translate order status codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, "status", args, func(s string) (string, error) {
				return a.formatter.StatusText(s), nil
			})
		},
	}
}

func (a *app) capitalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize <text>...",
		Short: "Sentence-case text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, "capitalize", args, func(s string) (string, error) {
				return a.formatter.CapitalizeFirstLetter(s), nil
			})
		},
	}
}
