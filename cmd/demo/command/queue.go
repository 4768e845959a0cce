package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/practicalabs/dsakit/internal/logging"
	"github.com/practicalabs/dsakit/internal/queue/impl/linked"
)

// Queue walks the FIFO queue through pushes, peeks and interleaved pops.
type Queue struct{}

func (cmd Queue) Command(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "exercise the linked FIFO queue",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(ctx)
		},
	}
}

func (cmd Queue) main(ctx context.Context) {
	log := logging.FromContext(ctx)

	q := linked.CreateQueue[int]()

	for _, v := range []int{10, 20, 30} {
		q.Push(v)
		log.Info("pushed", logging.Int("value", v), logging.Int("size", q.Size()))
	}

	front, err := q.Front()
	if err != nil {
		log.Fatal("front failed", logging.Error(err))
	}
	log.Info("queue state", logging.Int("front", front), logging.Int("size", q.Size()))

	v, err := q.Pop()
	if err != nil {
		log.Fatal("pop failed", logging.Error(err))
	}
	log.Info("popped", logging.Int("value", v))

	front, err = q.Front()
	if err != nil {
		log.Fatal("front failed", logging.Error(err))
	}
	log.Info("queue state", logging.Int("front", front), logging.Int("size", q.Size()))

	for !q.IsEmpty() {
		v, err := q.Pop()
		if err != nil {
			log.Fatal("pop failed", logging.Error(err))
		}
		log.Info("popped", logging.Int("value", v))
	}

	// Popping past the end is a caller error, reported, not fabricated.
	if _, err := q.Pop(); err != nil {
		log.Warn("pop on empty queue", logging.Error(err))
	}
}
