// Load command: import documents from a JSON file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load documents from a JSON file",
	Long: `Load reads a JSON array of documents and saves each record as a
revision, creating titles as needed.

The file format is:
  [
    {"title": "Name", "creation_timestamp": "2023-01-01T00:00:00Z", "content": "..."},
    ...
  ]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachStore()
		if err != nil {
			return err
		}
		defer backend.Detach()

		n, err := backend.LoadDocumentsFile(args[0])
		if err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		fmt.Printf("Loaded %d documents from %s\n", n, args[0])
		return nil
	},
}
