package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/yardstick/pkg/units"
)

func newConvertCmd() *cobra.Command {
	var strip bool

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a quantity between units",
		Long: `Convert VALUE, measured in unit FROM, to unit TO.

VALUE is an integer, a decimal, or a rational like 3/4. Integer and
rational values convert exactly when both unit definitions are exact;
otherwise the result is a floating-point approximation.`,
		Example: `  yardstick convert 100 cm m
  yardstick convert 3/4 h min
  yardstick convert 2.5 kg g`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, err := parseScalar(args[0])
			if err != nil {
				return err
			}
			from, err := lookupUnits(args[1])
			if err != nil {
				return err
			}
			to, err := lookupUnits(args[2])
			if err != nil {
				return err
			}

			got, err := units.Convert(to, units.New(val, from))
			if err != nil {
				return fmt.Errorf("convert %s to %s: %w", args[1], args[2], err)
			}
			logger.Debug("converted",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
				zap.Bool("exact", got.Value().IsExact()))

			if strip {
				fmt.Fprintln(cmd.OutOrStdout(), got.Value())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strip, "strip", false, "print the numeric value without the unit")

	return cmd
}

// lookupUnits resolves a unit name against the registry.
func lookupUnits(name string) (units.Units, error) {
	u, ok := registry.Lookup(name)
	if !ok {
		return units.Units{}, fmt.Errorf("unknown unit %q (try \"yardstick units list\")", name)
	}
	return u, nil
}

// parseScalar reads an integer, a rational written as n/d, or a decimal.
// Integers and rationals stay on the exact path.
func parseScalar(s string) (units.Scalar, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return units.Scalar{}, fmt.Errorf("invalid value %q: %w", s, err)
		}
		d, err := strconv.ParseInt(den, 10, 64)
		if err != nil {
			return units.Scalar{}, fmt.Errorf("invalid value %q: %w", s, err)
		}
		v, err := units.Exact(n, d)
		if err != nil {
			return units.Scalar{}, fmt.Errorf("invalid value %q: %w", s, err)
		}
		return v, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return units.Int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return units.Scalar{}, fmt.Errorf("invalid value %q", s)
	}
	return units.Float(f), nil
}
