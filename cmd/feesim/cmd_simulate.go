package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/fee-referendum/models"
	"github.com/danielhkuo/fee-referendum/simulator"
)

var (
	simulateFee    int
	simulateAll    bool
	simulateOutput string
)

var errUnknownFormat = errors.New("unknown output format (want text, json or yaml)")

// simulateCmd prints the impact of one fee level
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Show the impact of a fee level",
	Long: `Prints the funding status, revenue estimate and the revealed impact items
for a fee level, exactly as the slider on the landing page shows them.

Examples:
  feesim simulate --fee 3
  feesim simulate --all
  feesim simulate --fee 6 -o yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateFee, "fee", "f", int(simulator.ProposedFee), "Fee per semester in dollars (1-8)")
	simulateCmd.Flags().BoolVarP(&simulateAll, "all", "a", false, "Summarize every slider step")
	simulateCmd.Flags().StringVarP(&simulateOutput, "output", "o", "text", "Output format: text, json or yaml")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if simulateAll {
		steps, err := stepSummaries()
		if err != nil {
			return err
		}
		logger.Debug("rendering slider overview", "steps", len(steps.Steps))
		return writeSteps(out, simulateOutput, steps)
	}

	res, err := simulator.Simulate(simulator.FeeAmount(simulateFee))
	if err != nil {
		return fmt.Errorf("--fee %d: %w", simulateFee, err)
	}
	logger.Debug("simulated fee", "fee", simulateFee, "phase", res.Phase)
	return writeSimulation(out, simulateOutput, models.NewSimulationResponse(res))
}

func stepSummaries() (models.StepsResponse, error) {
	var steps models.StepsResponse
	for _, fee := range simulator.Steps() {
		res, err := simulator.Simulate(fee)
		if err != nil {
			return models.StepsResponse{}, err
		}
		steps.Steps = append(steps.Steps, models.StepSummary{
			Fee:          int(res.Fee),
			Phase:        res.Phase.String(),
			Revenue:      res.Revenue,
			VisibleCount: res.VisibleCount,
			Negative:     res.Negative,
		})
	}
	return steps, nil
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%q: %w", format, errUnknownFormat)
}

func writeSimulation(w io.Writer, format string, sim models.SimulationResponse) error {
	if format != "text" {
		return writeStructured(w, format, sim)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Fee: $%d per semester\n", sim.Fee)
	fmt.Fprintf(&b, "Status: %s\n", sim.Status.Label)
	fmt.Fprintf(&b, "  Deficit:      %s\n", sim.Status.Deficit)
	fmt.Fprintf(&b, "  Club funding: %s\n", sim.Status.ClubFunding)
	fmt.Fprintf(&b, "  Events:       %s\n", sim.Status.Events)
	fmt.Fprintf(&b, "Estimated revenue: %s per year\n", sim.RevenueDisplay)
	fmt.Fprintf(&b, "  %s\n\n", sim.RevenueNote)

	b.WriteString(sim.Heading + "\n")
	for _, item := range sim.Impacts[:sim.VisibleCount] {
		fmt.Fprintf(&b, "  - %s: %s\n", item.Title, item.Description)
	}
	if sim.Hint != "" {
		b.WriteString(sim.Hint + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSteps(w io.Writer, format string, steps models.StepsResponse) error {
	if format != "text" {
		return writeStructured(w, format, steps)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-9s %-9s %s\n", "FEE", "PHASE", "REVENUE", "ITEMS")
	for _, s := range steps.Steps {
		kind := "benefits"
		if s.Negative {
			kind = "consequences"
		}
		fmt.Fprintf(&b, "$%-3d %-9s $%-8s %d %s\n", s.Fee, s.Phase, fmt.Sprintf("%dk", s.Revenue), s.VisibleCount, kind)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
