package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hashicorp/logutils"
	"github.com/joho/godotenv"
)

func init() {
	// .env is optional, the same way the host treats it.
	_ = godotenv.Load()

	logLevel := os.Getenv("SSP_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(logLevel),
		Writer:   os.Stderr,
	}
	log.SetOutput(filter)
}

func main() {
	app := newApp()

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
