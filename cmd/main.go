package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jeffleon2/draftea-device-payments/config"
	"github.com/jeffleon2/draftea-device-payments/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	configureLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	myApp := &app.App{}
	if err := myApp.Initialize(ctx, cfg); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Fatalf("Server error: %s", err.Error())
	}
}

func configureLogging(cfg config.Log) {
	if strings.EqualFold(cfg.Format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
