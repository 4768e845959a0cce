package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/practicalabs/dsakit/cmd/demo/command"
	"github.com/practicalabs/dsakit/internal/logging"
)

func main() {
	log := logging.New()
	defer func() { _ = log.Sync() }()

	ctx := log.GetContext(context.Background())

	const description = "walkthroughs of the dsakit building blocks"
	root := &cobra.Command{Use: "demo", Short: description}

	root.AddCommand(
		command.Queue{}.Command(ctx),
		command.Payments{}.Command(ctx),
		command.Users{}.Command(ctx),
	)

	if err := root.Execute(); err != nil {
		log.Fatal("failed to execute root command", logging.Error(err))
	}
}
