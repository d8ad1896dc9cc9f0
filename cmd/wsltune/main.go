package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/wsltune/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := app.NewLogger(os.Stderr)
	root := newRootCommand(cliIO{stdin: os.Stdin, stdout: os.Stdout, logger: logger})
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
