package main

import (
	"os"

	"appraisal/internal/cli"
	"appraisal/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
