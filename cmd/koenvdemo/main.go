// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command koenvdemo exercises the koenv package: the overflow subcommand
// runs the optional addition pipeline over a random sample, and the volume
// subcommand runs the environment comonad over a radius/height pair.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "koenvdemo",
	Short: "Demonstrations of the koenv optional and comonad pipelines",
	Long: `koenvdemo runs the two koenv example computations.

  overflow - optional addition over a random uint16 sample
  volume   - environment comonad over a radius/height pair

Both commands are idempotent; repeated runs are safe.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      slog.LevelInfo,
				TimeFormat: "15:04:05",
			}),
		))
	},
}

func init() {
	rootCmd.AddCommand(overflowCmd)
	rootCmd.AddCommand(volumeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
