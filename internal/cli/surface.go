package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stochastic/pricing"
)

func newSurfaceCmd(rc *RootConfig) *cobra.Command {
	var (
		s0        float64
		strike    float64
		rate      float64
		horizon   float64
		baseSigma float64
		typ       string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "surface",
		Short: "Build an implied-volatility surface and write it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ot := pricing.OptionType(typ)
			if ot != pricing.Call && ot != pricing.Put {
				return fmt.Errorf("--type must be 'call' or 'put' (got %q)", typ)
			}
			if out == "" {
				return fmt.Errorf("--out is required")
			}

			surf, err := pricing.Surface(pricing.SurfaceConfig{
				S0:        s0,
				KCenter:   strike,
				R:         rate,
				T:         horizon,
				Type:      ot,
				BaseSigma: baseSigma,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			w := csv.NewWriter(f)
			if err := w.Write([]string{"strike", "maturity", "implied_vol"}); err != nil {
				return err
			}
			for i, k := range surf.Strikes {
				for j, t := range surf.Maturities {
					err := w.Write([]string{
						strconv.FormatFloat(k, 'f', 6, 64),
						strconv.FormatFloat(t, 'f', 6, 64),
						strconv.FormatFloat(surf.Vols[i][j], 'f', 6, 64),
					})
					if err != nil {
						return err
					}
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}

			fmt.Printf("surface written to %s (%d strikes x %d maturities)\n",
				out, len(surf.Strikes), len(surf.Maturities))
			return nil
		},
	}

	cmd.Flags().Float64Var(&s0, "s0", 100, "Spot price (> 0)")
	cmd.Flags().Float64Var(&strike, "strike", 100, "Central strike (> 0)")
	cmd.Flags().Float64Var(&rate, "rate", 0.05, "Risk-free rate (>= 0)")
	cmd.Flags().Float64Var(&horizon, "horizon", 1, "Central maturity in years (> 0)")
	cmd.Flags().Float64Var(&baseSigma, "base-sigma", 0.2, "Volatility used to synthesize quotes")
	cmd.Flags().StringVar(&typ, "type", "call", "Option type: call|put")
	cmd.Flags().StringVar(&out, "out", "./surface.csv", "CSV output path")

	return cmd
}
