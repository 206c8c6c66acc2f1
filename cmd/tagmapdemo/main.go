package main

import "os"

func main() {
	rootCmd := newRootCmd()

	registerSchemaCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
