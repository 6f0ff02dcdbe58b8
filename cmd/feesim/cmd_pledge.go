package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/fee-referendum/cliparse"
	"github.com/danielhkuo/fee-referendum/pledge"
)

var (
	pledgeName     string
	pledgeEmail    string
	pledgeInterest string
	pledgeNoVote   bool
	backendURL     string
	pledgeTimeout  time.Duration
)

var errPledgeRejected = errors.New("pledge not recorded")

// pledgeCmd submits one pledge from the command line
var pledgeCmd = &cobra.Command{
	Use:   "pledge",
	Short: "Pledge to vote YES",
	Long: `Sends a pledge to the pledge service. The service URL comes from
--backend, or BACKEND_URL in the environment or a .env file.

Interest areas:
  just_reminders, volunteering, design_social, strategy

Example:
  feesim pledge --name "Sam Lee" --email sam@sfu.ca --interest volunteering`,
	Args: cobra.NoArgs,
	RunE: runPledge,
}

func init() {
	pledgeCmd.Flags().StringVarP(&pledgeName, "name", "n", "", "Your name (required)")
	pledgeCmd.Flags().StringVarP(&pledgeEmail, "email", "e", "", "Your email (required)")
	pledgeCmd.Flags().StringVarP(&pledgeInterest, "interest", "i", "", "How you'd like to help")
	pledgeCmd.Flags().BoolVar(&pledgeNoVote, "no-vote", false, "Sign up without pledging to vote")

	for _, cmd := range []*cobra.Command{pledgeCmd, tuiCmd} {
		cmd.Flags().StringVarP(&backendURL, "backend", "b", "", "Pledge service base URL (overrides BACKEND_URL)")
		cmd.Flags().DurationVar(&pledgeTimeout, "timeout", 0, "Pledge request timeout (overrides PLEDGE_TIMEOUT)")
	}
}

// loadClient builds the pledge service client from env, .env and flags
func loadClient() (*pledge.Client, error) {
	cfg, err := cliparse.FromEnv()
	if err != nil {
		return nil, err
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	if pledgeTimeout != 0 {
		cfg.RequestTimeout = pledgeTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return pledge.NewClient(cfg.BackendURL, pledge.WithTimeout(cfg.RequestTimeout)), nil
}

func runPledge(cmd *cobra.Command, args []string) error {
	form := pledge.DefaultRequest().
		WithName(pledgeName).
		WithEmail(pledgeEmail).
		WithInterestArea(pledge.InterestArea(pledgeInterest)).
		WithPledgeToVote(!pledgeNoVote)
	// Check the form before touching config so typos fail fast
	if err := form.Validate(); err != nil {
		return err
	}

	client, err := loadClient()
	if err != nil {
		return err
	}
	logger.Debug("pledge service", "endpoint", client.Endpoint())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flow := pledge.NewFlow(client, pledge.WithLogger(logger), pledge.WithForm(form))
	state, err := flow.Submit(ctx)
	if err != nil {
		return err
	}
	return reportPledge(cmd, state)
}

func reportPledge(cmd *cobra.Command, state pledge.State) error {
	if state.Status != pledge.StatusSuccess {
		return fmt.Errorf("%w: %s", errPledgeRejected, state.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Pledge Confirmed. Thanks for standing up for student services.")
	return nil
}

// offlineSender stands in when no pledge service is configured, so the
// interactive simulator still runs
type offlineSender struct {
	reason error
}

func (s offlineSender) Send(context.Context, pledge.Request) error {
	return fmt.Errorf("no pledge service configured: %w", s.reason)
}
