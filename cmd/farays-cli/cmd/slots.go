package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"
	_ "time/tzdata" // zoneinfo for --timezone

	"github.com/nfrund/farays/internal/reservation"
	"github.com/spf13/cobra"
)

var (
	slotsDays     int
	slotsTimezone string
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show reservation time slots, party sizes and the next open dates",
	Long: `Show what the reservation panel offers: the fixed evening time slots,
the accepted party sizes, and the next open dates in the restaurant's time zone.
The restaurant does not take reservations on its closed weekday.

Examples:
  farays-cli slots
  farays-cli slots --days 14 --timezone America/Chicago`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := time.LoadLocation(slotsTimezone)
		if err != nil {
			return fmt.Errorf("invalid --timezone: %w", err)
		}
		if slotsDays < 1 {
			return fmt.Errorf("--days must be at least 1")
		}
		cal := reservation.NewCalendar(loc)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME SLOT\tLABEL")
		fmt.Fprintln(w, "---------\t-----")
		for _, s := range reservation.TimeSlots() {
			fmt.Fprintf(w, "%s\t%s\n", s, s.Label())
		}
		w.Flush()

		sizes := reservation.PartySizes()
		labels := make([]string, len(sizes))
		for i, p := range sizes {
			labels[i] = p.String()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nParty sizes: %s\n", strings.Join(labels, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "Closed on %ss (%s)\n\n", reservation.ClosedWeekday, loc)

		fmt.Fprintln(cmd.OutOrStdout(), "Next open dates:")
		for _, d := range cal.Upcoming(slotsDays) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", d.Format(reservation.DateLayout), reservation.FormatDate(d))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd)
	slotsCmd.Flags().IntVarP(&slotsDays, "days", "d", 7, "Number of open dates to list")
	slotsCmd.Flags().StringVar(&slotsTimezone, "timezone", "America/New_York", "Restaurant time zone")
}
