package command

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/practicalabs/dsakit/internal/logging"
	"github.com/practicalabs/dsakit/internal/payments"
)

type paymentsConfig struct {
	SuccessRate float64 `json:"success_rate"`
	Seed        int64   `json:"seed"`
}

// Payments runs the simulated gateway scenario: register a Visa and a
// MasterCard payment, reject an invalid one, drain the pending queue and
// inspect the outcomes.
type Payments struct {
	configFile string
	seed       int64
}

func (cmd Payments) Command(ctx context.Context) *cobra.Command {
	c := &cobra.Command{
		Use:   "payments",
		Short: "exercise the simulated payment gateways",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(ctx)
		},
	}

	c.Flags().StringVar(&cmd.configFile, "config", "", "JSON file with simulation parameters")
	c.Flags().Int64Var(&cmd.seed, "seed", 0, "fix the simulation's randomness")

	return c
}

func (cmd Payments) getConfig() (paymentsConfig, error) {
	config := paymentsConfig{SuccessRate: 1, Seed: cmd.seed}

	if cmd.configFile == "" {
		return config, nil
	}

	f, err := os.Open(cmd.configFile)
	if err != nil {
		return paymentsConfig{}, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return paymentsConfig{}, err
	}

	if err := json.Unmarshal(raw, &config); err != nil {
		return paymentsConfig{}, err
	}

	return config, nil
}

func (cmd Payments) main(ctx context.Context) {
	log := logging.FromContext(ctx)

	config, err := cmd.getConfig()
	if err != nil {
		log.Fatal("failed to load config", logging.Error(err))
	}

	manager := &payments.Manager{
		SuccessRate: config.SuccessRate,
		Seed:        config.Seed,
	}

	visaKey, err := manager.Start(ctx, payments.GatewayVisa, 500.75)
	if err != nil {
		log.Fatal("could not start visa payment", logging.Error(err))
	}

	mcKey, err := manager.Start(ctx, payments.GatewayMastercard, 1250.00)
	if err != nil {
		log.Fatal("could not start mastercard payment", logging.Error(err))
	}

	if _, err := manager.Start(ctx, payments.GatewayVisa, -100.0); err != nil {
		log.Warn("rejected payment", logging.Error(err))
	}

	log.Info("pending payments", logging.Int("count", manager.Pending()))

	for _, r := range manager.Drain(ctx) {
		if err := r.Err(); err != nil {
			log.Error("settlement error", logging.Error(err))
			continue
		}

		receipt := r.Value()
		log.Info("settled",
			logging.String("key", receipt.Key),
			logging.Stringer("status", receipt.Status),
		)
	}

	for _, key := range []string{visaKey, mcKey, "INVALID_KEY"} {
		p, err := manager.Status(key)
		if errors.Is(err, payments.ErrUnknownPayment) {
			log.Warn("lookup failed", logging.String("key", key), logging.Error(err))
			continue
		}

		log.Info("payment status",
			logging.String("key", p.Key),
			logging.Stringer("gateway", p.Gateway),
			logging.Float("amount", p.Amount),
			logging.Stringer("status", p.Status),
		)
	}

	all := manager.List()
	for _, p := range all {
		log.Info("registered payment",
			logging.String("key", p.Key),
			logging.Stringer("gateway", p.Gateway),
			logging.Float("amount", p.Amount),
		)
	}
	log.Info("total payments", logging.Int("count", len(all)))
}
