package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/freshbasket/app/jobs"
	"github.com/shashiranjanraj/freshbasket/pkg/cache"
	"github.com/shashiranjanraj/freshbasket/pkg/database"
	"github.com/shashiranjanraj/freshbasket/pkg/queue"
)

var queueWorkersFlag int

// freshbasket queue:work — run queue workers in a dedicated process. Uses
// the Redis driver so it shares the queue with the API server.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		if err := cache.Connect(); err != nil {
			return fmt.Errorf("queue:work needs redis: %w", err)
		}
		client := cache.Client()
		if client == nil {
			return fmt.Errorf("queue:work needs redis: no client")
		}

		jobs.Register()
		queue.SetDriver(queue.NewRedisDriver(client, ""))
		queue.UseDB(database.DB)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
