package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/persondir/pkg/persons"
)

// lookupCmd resolves a single identity across all configured sources.
var lookupCmd = &cobra.Command{
	Use:   "lookup <uid>",
	Short: "Resolve one identity by its identifier",
	Long: `Lookup builds a seed query from the identifier using the configured
username attribute, queries every source, and prints the merged record.

Exits with an error when more than one record matches the identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		person, err := client.Person(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if person == nil {
			return fmt.Errorf("no person found for %q", args[0])
		}

		return printRecords(cmd, []persons.Person{*person})
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// printRecords writes person records in the configured output format.
func printRecords(cmd *cobra.Command, records []persons.Person) error {
	switch viper.GetString("output") {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
	default:
		data, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		cmd.Print(string(data))
	}
	return nil
}
