// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"code.hybscloud.com/koenv"
)

const (
	sampleSize  = 10
	sampleIndex = 4
	addDelta    = 586
)

var overflowSeed uint64

// overflowCmd threads a randomly sampled uint16 through the optional
// addition pipeline. Index 4 of a 10-element sample is always present, so
// an absent result can only mean the addition overflowed.
var overflowCmd = &cobra.Command{
	Use:   "overflow",
	Short: "Optional addition over a random uint16 sample",
	Run:   runOverflow,
}

func init() {
	overflowCmd.Flags().Uint64Var(&overflowSeed, "seed", 0,
		"PCG seed for the sample (0 uses the global generator)")
}

func runOverflow(cmd *cobra.Command, args []string) {
	sample := make([]uint16, sampleSize)
	if overflowSeed != 0 {
		rng := rand.New(rand.NewPCG(overflowSeed, 0))
		for i := range sample {
			sample[i] = uint16(rng.UintN(math.MaxUint16 + 1))
		}
	} else {
		for i := range sample {
			sample[i] = uint16(rand.UintN(math.MaxUint16 + 1))
		}
	}

	result := koenv.SafeAdd(koenv.At(sample, sampleIndex), addDelta)

	slog.Info("sampled", "values", sample, "index", sampleIndex, "delta", addDelta)
	if v, ok := result.Get(); ok {
		slog.Info("sum", "picked", sample[sampleIndex], "result", v)
	} else {
		slog.Info("no result", "cause", "overflow", "picked", sample[sampleIndex])
	}
}
