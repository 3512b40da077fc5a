// Package main provides the Lambda handler for the reservation summary.
// This is the entry point for AWS Lambda Function URL deployment.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/diillson/aws-reservation-summary/internal/adapter/driven/aws"
	"github.com/diillson/aws-reservation-summary/internal/application/usecase"
	"github.com/diillson/aws-reservation-summary/internal/logging"
)

func main() {
	logCfg := logging.DefaultConfig()
	logCfg.Level = "info"
	logCfg.Format = "json"
	logCfg.Output = "stdout"
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logCfg.Level = level
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	defaults := usecase.DefaultConfig()
	defaults.ResolveAccount = os.Getenv("RESOLVE_ACCOUNT") == "true"

	summaryUseCase := usecase.NewSummaryUseCase(nil, aws.NewAWSRepository(), nil, nil, logger)
	h := newHandler(summaryUseCase, defaults, logger)

	lambda.Start(h.Handle)
}
