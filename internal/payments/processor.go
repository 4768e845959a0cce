package payments

import (
	"context"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/practicalabs/dsakit/internal/logging"
)

// Processor is the strategy a single gateway implements. Process simulates
// a settlement round against the provider and returns an error when the
// provider declines.
type Processor interface {
	Name() string
	TransactionID() string
	Process(ctx context.Context, amount float64) error
}

// simulation holds the shared behavior of the fake providers: transaction
// IDs are a provider prefix plus a uuid fragment, and settlement succeeds
// with probability rate.
type simulation struct {
	name   string
	prefix string
	rate   float64
	rnd    *rand.Rand
}

func (s simulation) Name() string {
	return s.name
}

func (s simulation) TransactionID() string {
	frag := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return s.prefix + strings.ToUpper(frag)
}

func (s simulation) Process(ctx context.Context, amount float64) error {
	log := logging.FromContext(ctx)

	log.Info("processing payment",
		logging.String("gateway", s.name),
		logging.Float("amount", amount),
	)

	if s.rnd.Float64() >= s.rate {
		return Error.New("%s declined the payment", s.name)
	}

	return nil
}

func newVisa(rate float64, rnd *rand.Rand) Processor {
	return simulation{name: "VISA", prefix: "VISA_", rate: rate, rnd: rnd}
}

func newMastercard(rate float64, rnd *rand.Rand) Processor {
	return simulation{name: "MASTERCARD", prefix: "MC_", rate: rate, rnd: rnd}
}
