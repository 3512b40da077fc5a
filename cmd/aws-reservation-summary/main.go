package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-reservation-summary/internal/adapter/driven/aws"
	"github.com/diillson/aws-reservation-summary/internal/adapter/driven/config"
	"github.com/diillson/aws-reservation-summary/internal/adapter/driven/export"
	"github.com/diillson/aws-reservation-summary/internal/adapter/driven/source"
	"github.com/diillson/aws-reservation-summary/internal/adapter/driving/cli"
	"github.com/diillson/aws-reservation-summary/pkg/console"
	"github.com/diillson/aws-reservation-summary/pkg/version"
)

func main() {
	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()

	app := cli.NewCLIApp(version.Version, cli.Dependencies{
		AWSRepo:    awsRepo,
		SourceRepo: source.NewSourceRepository(awsRepo),
		ExportRepo: export.NewExportRepository(),
		ConfigRepo: config.NewConfigRepository(),
		Console:    console.NewConsole(),
		Updates:    version.NewUpdateChecker(version.ReleaseURLFromEnv()),
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
