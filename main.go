package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/parkgrove/aws-endpoint-survey/cmd"
	"github.com/parkgrove/aws-endpoint-survey/pkg/catalog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	if err == nil {
		return
	}

	var fatal *catalog.FatalError
	if !errors.As(err, &fatal) {
		log.WithError(err).Fatal("error in the cli. exiting")
	}

	switch fatal.Kind {
	case catalog.FailureAborted:
		log.Error(fatal.Message)
	case catalog.FailureCredentials, catalog.FailureAPI:
		log.Errorf("❌ %s", fatal.Message)
	}
	os.Exit(1)
}
