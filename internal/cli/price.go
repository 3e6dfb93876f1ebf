package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/stochastic/pricing"
)

func newPriceCmd(rc *RootConfig) *cobra.Command {
	var (
		s0      float64
		strike  float64
		rate    float64
		sigma   float64
		horizon float64
		typ     string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a European option with Black-Scholes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ot := pricing.OptionType(typ)
			if ot != pricing.Call && ot != pricing.Put {
				return fmt.Errorf("--type must be 'call' or 'put' (got %q)", typ)
			}

			price, err := pricing.BlackScholes(s0, strike, rate, sigma, horizon, ot)
			if err != nil {
				return err
			}
			vega := pricing.Vega(s0, strike, rate, sigma, horizon)

			fmt.Printf("%s S0=%.4f K=%.4f r=%.4f sigma=%.4f T=%.4f\n",
				typ, s0, strike, rate, sigma, horizon)
			fmt.Printf("  price=%.4f vega=%.4f\n", price, vega)
			return nil
		},
	}

	cmd.Flags().Float64Var(&s0, "s0", 100, "Spot price (> 0)")
	cmd.Flags().Float64Var(&strike, "strike", 100, "Strike price (> 0)")
	cmd.Flags().Float64Var(&rate, "rate", 0.05, "Risk-free rate (>= 0)")
	cmd.Flags().Float64Var(&sigma, "sigma", 0.2, "Volatility (> 0)")
	cmd.Flags().Float64Var(&horizon, "horizon", 1, "Time to expiry in years (> 0)")
	cmd.Flags().StringVar(&typ, "type", "call", "Option type: call|put")

	return cmd
}
