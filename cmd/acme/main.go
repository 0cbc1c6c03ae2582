package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/acme/acme/config"
	"github.com/acme/acme/pkg/metrics"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var showMetricsFlag bool

var rootCmd = &cobra.Command{
	Use:           "acme",
	Short:         "Acme ordering CLI",
	Long:          "Place purchase orders with vendors and work with product pricing.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if showMetricsFlag {
			printMetrics(cmd)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showMetricsFlag, "metrics", false, "Print counters after the command runs")

	// Orders
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(orderFlagsCmd)

	// Vendors
	rootCmd.AddCommand(welcomeCmd)

	// Products
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(helloCmd)
}

func printMetrics(cmd *cobra.Command) {
	snap := metrics.Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintf(out, "%s %g\n", name, snap[name])
	}
}
