package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/persondir/pkg/persons"
)

// searchCmd queries all sources with an arbitrary attribute seed.
var searchCmd = &cobra.Command{
	Use:   "search <attribute=value>...",
	Short: "Search people by attribute values",
	Long: `Search builds a seed from attribute=value pairs, queries every source,
and prints the merged record set. Repeating an attribute adds another
accepted value for it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseSeed(args)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		people, err := client.PeopleWithAttributes(cmd.Context(), seed)
		if err != nil {
			return err
		}

		return printRecords(cmd, people.List())
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// parseSeed turns attribute=value arguments into a seed map.
func parseSeed(args []string) (persons.Attributes, error) {
	seed := persons.NewAttributes(len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid seed argument %q: want attribute=value", arg)
		}
		seed[name] = append(seed[name], value)
	}
	return seed, nil
}
