package cmd

import (
	"fmt"

	"github.com/nfrund/farays/cmd/farays-cli/internal/topics"
	"github.com/nfrund/farays/internal/topicmgr"
	"github.com/spf13/cobra"

	// Topics are registered when the packages that publish them are loaded.
	_ "github.com/nfrund/farays/internal/server"
)

var (
	topicsOutputFormat string
	topicsModuleFilter string
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List and inspect the events published on the in-process bus",
	Long: `The server publishes reservation panel activity and content reloads as
events on an in-process bus. These commands list the registered topics and show
the JSON payload each one carries.

Examples:
  farays-cli topics list
  farays-cli topics list --module reservations --format json
  farays-cli topics get reservations.request.confirmed`,
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := topicmgr.Default()
		list := manager.List()
		if topicsModuleFilter != "" {
			list = manager.ListByModule(topicsModuleFilter)
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No topics found")
			return nil
		}
		switch topicsOutputFormat {
		case "json":
			return topics.DisplayTopicsJSON(cmd.OutOrStdout(), list)
		case "table":
			return topics.DisplayTopicsTable(cmd.OutOrStdout(), list)
		default:
			return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", topicsOutputFormat)
		}
	},
}

var topicsGetCmd = &cobra.Command{
	Use:   "get <topic-name>",
	Short: "Show details about a specific topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, err := topicmgr.Default().Lookup(args[0])
		if err != nil {
			return fmt.Errorf("%w (use 'farays-cli topics list' to see all topics)", err)
		}
		return topics.DisplayTopicDetails(cmd.OutOrStdout(), topic, topicsOutputFormat)
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsGetCmd)

	topicsCmd.PersistentFlags().StringVarP(&topicsOutputFormat, "format", "f", "table", "Output format (table, json)")
	topicsListCmd.Flags().StringVarP(&topicsModuleFilter, "module", "m", "", "Filter topics by module name")
}
