// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"code.hybscloud.com/koenv"
)

var (
	volumeRadius float64
	volumeHeight float64
)

// volumeCmd pairs a radius with its height environment and increments the
// radius twice — once through Map, once through Extend with a re-extracting
// function. Both paths perform the same single addition, so the results
// agree bit for bit. It then computes a cylinder-style volume through a
// context-aware function to show the environment traveling with the value.
var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Environment comonad over a radius/height pair",
	Run:   runVolume,
}

func init() {
	volumeCmd.Flags().Float64Var(&volumeRadius, "radius", 14, "contained radius value")
	volumeCmd.Flags().Float64Var(&volumeHeight, "height", 15, "height carried as the environment")
}

func runVolume(cmd *cobra.Command, args []string) {
	cylinder := koenv.New(volumeRadius, volumeHeight)

	mapped := koenv.Extract(koenv.Map(cylinder, func(r float64) float64 {
		return r + 1
	}))
	extended := koenv.Extract(koenv.Extend(cylinder, func(d koenv.Env[float64, float64]) float64 {
		return koenv.Extract(d) + 1
	}))

	slog.Info("incremented radius",
		"via_map", mapped, "via_extend", extended, "agree", mapped == extended)

	vol := koenv.Extend(cylinder, func(d koenv.Env[float64, float64]) float64 {
		return math.Pi * koenv.Extract(d) * d.Ask()
	})
	slog.Info("cylinder volume",
		"radius", volumeRadius, "height", vol.Ask(), "volume", koenv.Extract(vol))
}
