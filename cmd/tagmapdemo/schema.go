package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidroman0O/tagmap"
)

func registerSchemaCmd(rootCmd *cobra.Command) {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "print the JSON schema of a snapshot entry",
		Long:  "Prints the JSON schema of one element of the array written by --format=json.",
		RunE:  runSchema,
	}

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	schema := tagmap.EntrySchema[int, string, string]()

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
