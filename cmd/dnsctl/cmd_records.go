package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func newCmdAdd(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "add <hostname> <type> <value>",
		Short: "Create an A or CNAME record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{
				"hostname": args[0],
				"type":     args[1],
				"value":    args[2],
			}
			data, err := client.do(http.MethodPost, "/dns", nil, payload)
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
}

func newCmdList(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "list <hostname>",
		Short: "List all records at a hostname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.do(http.MethodGet, "/dns/"+url.PathEscape(args[0])+"/records", nil, nil)
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
}

func newCmdResolve(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <hostname>",
		Short: "Resolve a hostname to its IPv4 addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.do(http.MethodGet, "/dns/"+url.PathEscape(args[0]), nil, nil)
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
}

func newCmdDelete(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hostname> <type> <value>",
		Short: "Delete an exact (hostname, type, value) record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("type", args[1])
			query.Set("value", args[2])
			data, err := client.do(http.MethodDelete, "/dns/"+url.PathEscape(args[0]), query, nil)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
