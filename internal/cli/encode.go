package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/errors"
)

// newEncodeCmd creates the encode command, which computes the
// Dowker-Thistlethwaite code of one or more braid words.
func newEncodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <word>...",
		Short: "Compute the DT code of braid words",
		Long: `Compute the Dowker-Thistlethwaite code of the closure of each given
positive braid word. Words use letters a, b, c, ... for the braid
generators, so "aaa" is the trefoil and "aaaaa" the (2,5) torus knot.

A word is rejected when its closure does not trace back to the start,
which happens when the closure has more than one component.`,
		Example: `  braidkit encode aaa
  braidkit encode aaabaaab aabab`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := openOutput(output)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer out.Close()

			for _, arg := range args {
				if err := errors.ValidateWordString(arg); err != nil {
					return err
				}
				w, err := braid.ParseWord(arg)
				if err != nil {
					return err
				}
				code, err := w.DTCode()
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				fmt.Fprintf(out, "%s: %s\n", w, code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}
