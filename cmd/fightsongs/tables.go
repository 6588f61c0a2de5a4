package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the conference summary and leaders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		sum, err := svc.Summary()
		if err != nil {
			return err
		}
		rk, err := svc.Rankings()
		if err != nil {
			return err
		}

		color.Cyan("\n=== Big Ten Fight Songs ===")
		table := newTable("Statistic", "Value")
		table.Append([]string{"Songs", strconv.Itoa(sum.Count)})
		table.Append([]string{"Mean tempo (BPM)", num(sum.MeanTempo)})
		table.Append([]string{"Mean duration (s)", num(sum.MeanDuration)})
		table.Append([]string{"Mean trope count", num(sum.MeanTropeCount)})
		table.Append([]string{`Mean "fight" mentions`, num(sum.MeanFightMentions)})
		table.Append([]string{"Mean year", num(sum.MeanYear)})
		table.Append([]string{"Most common trope", sum.MostCommonTrope.String()})
		table.Append([]string{"Oldest / newest", fmt.Sprintf("%d / %d", sum.OldestYear, sum.NewestYear)})
		table.Render()

		color.Yellow("\nLeaders")
		table = newTable("Category", "School", "Value")
		table.Append([]string{"Fastest", rk.Extremes.Fastest.School, num(rk.Extremes.Fastest.Value)})
		table.Append([]string{"Longest", rk.Extremes.Longest.School, num(rk.Extremes.Longest.Value)})
		table.Append([]string{"Oldest", rk.Extremes.Oldest.School, num(rk.Extremes.Oldest.Value)})
		table.Append([]string{"Most tropes", rk.Extremes.MostTropes.School, num(rk.Extremes.MostTropes.Value)})
		table.Append([]string{"Most traditional", rk.Traditionalism.MostTraditional.School, num(rk.Traditionalism.MostTraditional.Distance)})
		table.Append([]string{"Most unique", rk.Traditionalism.MostUnique.School, num(rk.Traditionalism.MostUnique.Distance)})
		table.Render()
		return nil
	},
}

var rankOrder string

var rankCmd = &cobra.Command{
	Use:   "rank <metric>",
	Short: "Rank every school by one metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := domain.ParseMetric(args[0])
		if err != nil {
			return err
		}
		ascending := !m.HigherIsBetter()
		switch rankOrder {
		case "":
		case "asc":
			ascending = true
		case "desc":
			ascending = false
		default:
			return fmt.Errorf("--order must be asc or desc, got %q", rankOrder)
		}

		svc, _, closeFn, err := openDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		rt, err := svc.RankTable(m, ascending)
		if err != nil {
			return err
		}
		color.Yellow("\n%s", m.Label())
		table := newTable("Rank", "School", "Value")
		for _, row := range rt.Rows {
			table.Append([]string{strconv.Itoa(row.Rank), row.School, num(row.Value)})
		}
		table.SetFooter([]string{"", "Big Ten Average", num(rt.Mean())})
		table.Render()
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <school>",
	Short: "Show one school against the conference average",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		p, err := svc.Profile(args[0])
		if err != nil {
			return err
		}
		color.Cyan("\n%s: %s (%d)", p.Song.School, p.Song.SongName, p.Song.Year)
		table := newTable("Metric", "Value", "Big Ten Avg", "Delta", "Percent")
		for _, mp := range p.Metrics {
			pct := "n/a"
			if mp.PercentOK {
				pct = fmt.Sprintf("%+.1f%%", mp.Percent)
			}
			table.Append([]string{mp.Metric.Label(), num(mp.Value), num(mp.ConferenceMean), deltaText(mp.Delta), pct})
		}
		table.Render()
		fmt.Printf("Traditionalism distance: %s\n", num(p.Distance))
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <left> <right>",
	Short: "Compare two schools metric by metric",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		c, err := svc.Compare(args[0], args[1])
		if err != nil {
			return err
		}
		table := newTable("Metric", c.Left, c.Right, "Winner", "Difference")
		for _, mc := range c.Metrics {
			winner := "Tie"
			if !mc.Tie {
				winner = c.Winner(mc.Metric)
			}
			diff := num(mc.Magnitude)
			if mc.PercentOK {
				diff = fmt.Sprintf("%s (%.1f%%)", diff, mc.Percent)
			}
			table.Append([]string{mc.Metric.Label(), num(mc.Left), num(mc.Right), winner, diff})
		}
		table.Render()
		return nil
	},
}

func init() {
	rankCmd.Flags().StringVar(&rankOrder, "order", "", "asc or desc (default: best first)")
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	return table
}

func num(v float64) string {
	return strconv.FormatFloat(metrics.Round(v, 2), 'f', -1, 64)
}

func deltaText(d metrics.Delta) string {
	text := fmt.Sprintf("%s %s", d.Direction.Arrow(), num(d.Magnitude))
	switch d.Direction {
	case metrics.Up:
		return color.GreenString("%s", text)
	case metrics.Down:
		return color.RedString("%s", text)
	}
	return text
}
