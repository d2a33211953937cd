// Command dnsctl is a small CLI client for the minidns REST API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	client := &apiClient{}

	cmd := &cobra.Command{
		Use:   "dnsctl",
		Short: "Manage DNS records on a minidns server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("MINIDNS_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	cmd.PersistentFlags().StringVar(&client.baseURL, "server", defaultServer, "minidns server base URL (env MINIDNS_SERVER)")
	cmd.PersistentFlags().StringVar(&client.apiKey, "api-key", os.Getenv("MINIDNS_API_KEY"), "API key (env MINIDNS_API_KEY)")

	cmd.AddCommand(newCmdAdd(client))
	cmd.AddCommand(newCmdList(client))
	cmd.AddCommand(newCmdResolve(client))
	cmd.AddCommand(newCmdDelete(client))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dnsctl: %v\n", err)
		os.Exit(1)
	}
}
