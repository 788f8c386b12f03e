package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seekbench/bench"
)

var reportCmd = &cobra.Command{
	Use:   "report <results.json>",
	Short: "Summarize a results file as a per-algorithm table",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	records, err := bench.ReadRecords(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROBLEM\tALGORITHM\tRUNS\tOK\tTIMEOUT\tFAIL\tAVG MS\tAVG KB\tAVG VISITED\tAVG LEN\tEBF")
	for _, s := range bench.Summarize(records) {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.2f\t%.0f\t%.0f\t%.1f\t%.2f\n",
			s.Problem, s.Algorithm, s.Instances, s.Completed, s.TimedOut, s.Failed,
			s.AvgTimeMS, s.AvgMemoryKB, s.AvgNodesVisited, s.AvgSolutionLength,
			s.AvgBranchingFactor)
	}
	return w.Flush()
}
