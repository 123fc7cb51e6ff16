// Command product-service runs the product catalog HTTP backend.
//
// Usage:
//
//	product-service serve
//
// Configuration comes from ./configs/config.<APP_ENV>.yaml plus environment
// variables; see configs/config.local.yaml for the full set of keys.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sportsynce/product-service/internal/app"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "product-service",
		Short:   "Product catalog backend with image uploads",
		Version: version,
	}

	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.New().Run()
			return nil
		},
	}
}
