package main

import (
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/paramcurve/curve3"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "curve3",
		Short: "Evaluate a random collection of 3D parametric curves",
		Long: `curve3 generates ten random curves (circles, ellipses, and helices),
evaluates each at t = PI/4, and prints the circles sorted by radius along
with the sum of their radii.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			curves := curve3.RandomCurves(rng, 10)
			return curve3.Demo(os.Stdout, curves)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
