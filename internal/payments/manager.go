package payments

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/practicalabs/dsakit/internal/logging"
	"github.com/practicalabs/dsakit/internal/queue"
	"github.com/practicalabs/dsakit/internal/queue/impl/linked"
	"github.com/practicalabs/dsakit/internal/types/result"
)

const receiptTTL = 5 * time.Minute

// Manager registers payments, queues them for settlement in FIFO order and
// keeps settled receipts in a TTL cache. The zero value is ready to use.
//
// Not safe for concurrent use; the demo is single-threaded throughout.
type Manager struct {
	// SuccessRate is the probability a simulated settlement succeeds,
	// in [0, 1]. Zero means every settlement succeeds.
	SuccessRate float64
	// Seed fixes the simulation's randomness when non-zero.
	Seed int64

	once     sync.Once
	rnd      *rand.Rand
	registry map[string]*Payment
	pending  queue.FIFOQueue[*Payment]
	receipts *cache.Cache
}

func (m *Manager) init() {
	m.once.Do(func() {
		seed := m.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		if m.SuccessRate == 0 {
			m.SuccessRate = 1
		}

		m.rnd = rand.New(rand.NewSource(seed))
		m.registry = map[string]*Payment{}
		m.pending = linked.CreateQueue[*Payment]()
		m.receipts = cache.New(receiptTTL, time.Minute)
	})
}

func (m *Manager) createProcessor(gateway Gateway) (Processor, error) {
	switch gateway {
	case GatewayVisa:
		return newVisa(m.SuccessRate, m.rnd), nil
	case GatewayMastercard:
		return newMastercard(m.SuccessRate, m.rnd), nil
	default:
		return nil, ErrUnsupportedGateway
	}
}

// Start validates and registers a payment, enqueues it for settlement and
// returns the key under which it can be looked up.
func (m *Manager) Start(ctx context.Context, gateway Gateway, amount float64) (string, error) {
	m.init()

	log := logging.FromContext(ctx)

	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	proc, err := m.createProcessor(gateway)
	if err != nil {
		return "", err
	}

	txID := proc.TransactionID()
	key := proc.Name() + "_" + txID

	p := &Payment{
		Key:           key,
		Gateway:       gateway,
		Amount:        amount,
		TransactionID: txID,
		Status:        StatusPending,
	}

	m.registry[key] = p
	m.pending.Push(p)

	log.Info("payment registered",
		logging.String("key", key),
		logging.Stringer("gateway", gateway),
		logging.Float("amount", amount),
	)

	return key, nil
}

// ProcessNext settles the oldest pending payment. When nothing is pending
// it returns queue.ErrEmptyQueue. A declined settlement is reported in the
// returned snapshot's status, not as an error.
func (m *Manager) ProcessNext(ctx context.Context) (Payment, error) {
	m.init()

	log := logging.FromContext(ctx)

	p, err := m.pending.Pop()
	if err != nil {
		return Payment{}, err
	}

	proc, err := m.createProcessor(p.Gateway)
	if err != nil {
		return Payment{}, err
	}

	p.Status = StatusProcessing

	if err := proc.Process(ctx, p.Amount); err != nil {
		p.Status = StatusFailed
		log.Warn("payment declined",
			logging.String("key", p.Key),
			logging.Error(err),
		)
	} else {
		p.Status = StatusSuccess
		log.Info("payment settled",
			logging.String("key", p.Key),
			logging.String("transaction_id", p.TransactionID),
		)
	}

	receipt := *p
	m.receipts.Set(p.Key, receipt, cache.DefaultExpiration)

	return receipt, nil
}

// Drain settles every pending payment in FIFO order and returns one result
// per payment, never stopping at a failed settlement.
func (m *Manager) Drain(ctx context.Context) []result.Result[Payment] {
	m.init()

	var results []result.Result[Payment]
	for {
		receipt, err := m.ProcessNext(ctx)
		if errors.Is(err, queue.ErrEmptyQueue) {
			return results
		}

		results = append(results, result.Of(receipt, err))
	}
}

// Status returns the current snapshot of a registered payment.
func (m *Manager) Status(key string) (Payment, error) {
	m.init()

	p, ok := m.registry[key]
	if !ok {
		return Payment{}, ErrUnknownPayment
	}

	return *p, nil
}

// Receipt looks up the settled receipt for a key while it is still cached.
func (m *Manager) Receipt(key string) (Payment, bool) {
	m.init()

	v, ok := m.receipts.Get(key)
	if !ok {
		return Payment{}, false
	}

	return v.(Payment), true
}

// Update applies an externally reported status, the way a provider webhook
// would.
func (m *Manager) Update(key string, status Status) error {
	m.init()

	p, ok := m.registry[key]
	if !ok {
		return ErrUnknownPayment
	}

	p.Status = status
	return nil
}

// List returns every registered payment ordered by key.
func (m *Manager) List() []Payment {
	m.init()

	all := make([]Payment, 0, len(m.registry))
	for _, p := range m.registry {
		all = append(all, *p)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })

	return all
}

// Pending reports how many payments are queued for settlement.
func (m *Manager) Pending() int {
	m.init()
	return m.pending.Size()
}
