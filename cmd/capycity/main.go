package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "capycity",
		Short:        "Place power plants on a building space and tally their cost",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./capycity.yaml)")

	rootCmd.AddCommand(playCmd(&configPath))
	rootCmd.AddCommand(applyCmd(&configPath))
	rootCmd.AddCommand(validateCmd(&configPath))
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(serveCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func playCmd(configPath *string) *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the interactive placement menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), *configPath, size)
		},
	}

	cmd.Flags().StringVarP(&size, "size", "s", "", "building space size as HxW (asked for when empty)")
	return cmd
}

func applyCmd(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "apply [plan-path]",
		Short: "Apply a plan file and print the resulting building space and costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runApply(*configPath, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func validateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plan-path]",
		Short: "Validate a plan file without printing the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(*configPath, args[0])
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List building types, their materials and prices",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			printCatalog(os.Stdout)
			return nil
		},
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var (
		port int
		size string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve one building space over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath, size, port, cmd.Flags().Changed("port"))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVarP(&size, "size", "s", "", "building space size as HxW (default from config)")
	return cmd
}
