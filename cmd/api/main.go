// @title        People Directory API
// @version      1.0
// @description  Directorio de personas con moderación de nombres y cuentas con login por token.
// @BasePath     /
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "people-api",
	Short:         "People directory HTTP API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("error: %+v\n", err)
		os.Exit(1)
	}
}
