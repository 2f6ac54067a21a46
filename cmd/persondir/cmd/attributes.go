package cmd

import (
	"github.com/spf13/cobra"
)

// attributesCmd prints the merged query shape of the configured sources.
var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "Show queryable and returnable attribute names",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		cmd.Println("Queryable attributes:")
		for _, name := range client.AvailableQueryAttributes().List() {
			cmd.Println("  " + name)
		}

		cmd.Println("Returnable attributes:")
		for _, name := range client.PossibleUserAttributeNames().List() {
			cmd.Println("  " + name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attributesCmd)
}
