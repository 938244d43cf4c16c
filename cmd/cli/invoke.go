package cli

import (
	"fmt"

	"balance_gateway/pkg/encoding"

	"github.com/spf13/cobra"
)

var printValue bool //nolint:gochecknoglobals

var invokeCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "invoke <function> [args...]",
	Short: "Run one function and print its uint256 result as hex.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		value, err := a.service.Invoke(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		result, err := encoding.EncodeHex(value)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result)
		if printValue {
			fmt.Fprintln(out, value.String())
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits
	invokeCmd.Flags().BoolVar(&printValue, "value", false, "also print the decimal value")
	rootCmd.AddCommand(invokeCmd)
}
