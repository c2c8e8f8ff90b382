package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"iris/internal/cli"

	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.Execute(ctx)
}
