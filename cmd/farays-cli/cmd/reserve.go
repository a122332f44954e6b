package cmd

import (
	"fmt"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nfrund/farays/cmd/farays-cli/internal/tui"
	"github.com/nfrund/farays/internal/reservation"
	"github.com/spf13/cobra"
)

var reserveTimezone string

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Walk through the reservation wizard in the terminal",
	Long: `Runs the four-step reservation flow of the website in the terminal: pick a
date, a time and party size, enter contact details, and read the confirmation.
Nothing is sent anywhere; the command is a way to try the flow.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := time.LoadLocation(reserveTimezone)
		if err != nil {
			return fmt.Errorf("invalid --timezone: %w", err)
		}
		final, err := tea.NewProgram(tui.New(reservation.NewCalendar(loc)),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(tui.Model); ok {
			if conf, ok := m.Confirmation(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), conf.String())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reserveCmd)
	reserveCmd.Flags().StringVar(&reserveTimezone, "timezone", "America/New_York", "Restaurant time zone")
}
