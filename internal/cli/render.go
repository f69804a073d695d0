package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/braidkit/braidkit/pkg/braid"
	"github.com/braidkit/braidkit/pkg/errors"
	"github.com/braidkit/braidkit/pkg/interlace"
)

const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// newRenderCmd creates the render command, which draws the interlacement
// diagram of a braid word's DT code.
func newRenderCmd() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render <word>",
		Short: "Draw the interlacement diagram of a braid word",
		Long: `Draw the interlacement graph of the closure of a positive braid word:
one vertex per crossing, labelled with its odd visit number, and an
edge between crossings whose chords interlace on the knot circle.
Crossings passed on the under strand are drawn dashed.`,
		Example: `  braidkit render aaa
  braidkit render aaabaaab --format png -o torus.png
  braidkit render aaaaa --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case formatSVG, formatPNG, formatDOT:
			default:
				return errors.New(errors.ErrCodeInvalidFormat,
					"unsupported format %q (want svg, png, or dot)", format)
			}

			if err := errors.ValidateWordString(args[0]); err != nil {
				return err
			}
			w, err := braid.ParseWord(args[0])
			if err != nil {
				return err
			}
			d, err := interlace.FromWord(w)
			if err != nil {
				return err
			}
			dot := interlace.ToDOT(d, interlace.Options{Detailed: detailed})

			if output == "" && format != formatDOT {
				output = fmt.Sprintf("%s.%s", w, format)
			}

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = interlace.RenderSVG(cmd.Context(), dot)
			case formatPNG:
				data, err = interlace.RenderPNG(cmd.Context(), dot)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			if output == "" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			printSuccess("Rendered %d-crossing diagram", d.Size())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg, png, or dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to <word>.<format>; dot prints to stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label vertices with both chord endpoints")

	return cmd
}
