package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/diillson/aws-reservation-summary/internal/adapter/driving/httpapi"
	"github.com/diillson/aws-reservation-summary/internal/application/usecase"
	"github.com/diillson/aws-reservation-summary/internal/domain/repository"
	"github.com/diillson/aws-reservation-summary/internal/logging"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/diillson/aws-reservation-summary/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Tempo máximo de espera pela verificação de versão depois do resumo.
const updateWaitTimeout = 1500 * time.Millisecond

// Dependencies são os repositórios e a saída de console usados pelos comandos.
type Dependencies struct {
	AWSRepo    repository.AWSRepository
	SourceRepo repository.SourceRepository
	ExportRepo repository.ExportRepository
	ConfigRepo repository.ConfigRepository
	Console    types.ConsoleInterface
	// Updates é opcional; nil desliga o aviso de nova versão.
	Updates *version.UpdateChecker
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	deps    Dependencies
	version string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, deps Dependencies) *CLIApp {
	app := &CLIApp{
		deps:    deps,
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "aws-reservation-summary",
		Short:         "Summarize an AWS Pricing Calculator export into a reservation proposal",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Reservation Summary version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().Float64P("exchange-rate", "e", types.DefaultExchangeRate, "USD to BRL exchange rate")
	rootCmd.PersistentFlags().Float64P("tax-rate", "x", types.DefaultTaxRate, "Tax rate in percent applied before conversion")
	rootCmd.PersistentFlags().String("lambda-payment", "", fmt.Sprintf("Lambda payment plan (%s)", strings.Join(types.PaymentPresets, " | ")))
	rootCmd.PersistentFlags().String("fargate-payment", "", fmt.Sprintf("Fargate payment plan (%s)", strings.Join(types.PaymentPresets, " | ")))
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile used for s3:// input and --resolve-account")
	rootCmd.PersistentFlags().Bool("resolve-account", false, "Use the caller's AWS account ID when the estimate does not name one")
	rootCmd.PersistentFlags().String("log-level", "", "Run log level: debug, info, warn, error (default: warn)")
	rootCmd.PersistentFlags().String("log-format", "", "Run log format: console or json")

	rootCmd.Flags().StringP("file", "f", "", "Estimate CSV exported by the AWS Pricing Calculator (path, s3://bucket/key or - for stdin)")
	rootCmd.Flags().StringP("report-name", "n", "", "Base name for the report files (default: resumo_aws_<client>_<account>)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Report types to export: txt, json, csv, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().Bool("no-banner", false, "Do not print the welcome banner")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the summary over HTTP",
		RunE:  app.runServe,
	}
	serveCmd.Flags().String("addr", ":8080", "HTTP listen address (host:port)")
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs substitui os argumentos lidos por Execute.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct. Numeric flags are only
// set when given explicitly so the config file can supply them.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	lambdaPayment, _ := flags.GetString("lambda-payment")
	fargatePayment, _ := flags.GetString("fargate-payment")
	profile, _ := flags.GetString("profile")
	resolveAccount, _ := flags.GetBool("resolve-account")
	logLevel, _ := flags.GetString("log-level")
	logFormat, _ := flags.GetString("log-format")

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		LambdaPayment:  lambdaPayment,
		FargatePayment: fargatePayment,
		Profile:        profile,
		ResolveAccount: resolveAccount,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}

	if flags.Changed("exchange-rate") {
		rate, _ := flags.GetFloat64("exchange-rate")
		args.ExchangeRate = &rate
	}
	if flags.Changed("tax-rate") {
		rate, _ := flags.GetFloat64("tax-rate")
		args.TaxRate = &rate
	}

	// Flags exclusivas do comando raiz.
	if cmd == app.rootCmd {
		args.File, _ = flags.GetString("file")
		args.ReportName, _ = flags.GetString("report-name")
		args.ReportType, _ = flags.GetStringSlice("report-type")
		args.NoBanner, _ = flags.GetBool("no-banner")

		dir, _ := flags.GetString("dir")
		if dir != "" {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return nil, err
			}
			dir = absDir
		}
		args.Dir = dir

		for i, reportType := range args.ReportType {
			args.ReportType[i] = strings.ToLower(strings.TrimSpace(reportType))
		}
	}

	return args, nil
}

// setup resolve a configuração e monta o logger e o caso de uso.
func (app *CLIApp) setup(cmd *cobra.Command) (*types.CLIArgs, *types.Config, *zap.Logger, *usecase.SummaryUseCase, error) {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	cfg, err := usecase.ResolveConfig(app.deps.ConfigRepo, cliArgs)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	summaryUseCase := usecase.NewSummaryUseCase(
		app.deps.SourceRepo,
		app.deps.AWSRepo,
		app.deps.ExportRepo,
		app.deps.Console,
		logger,
	)

	return cliArgs, cfg, logger, summaryUseCase, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, cfg, logger, summaryUseCase, err := app.setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cliArgs.File == "" {
		if len(args) != 1 {
			return fmt.Errorf("no estimate file given: use --file <path|s3://bucket/key|->")
		}
		cliArgs.File = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var updates <-chan string
	if !cliArgs.NoBanner {
		displayWelcomeBanner(app.version)
		updates = app.checkForUpdate(ctx, logger)
	}

	if err := summaryUseCase.RunSummary(ctx, cliArgs.File, cfg); err != nil {
		return err
	}
	app.notifyUpdate(updates)
	return nil
}

// checkForUpdate consulta a última release em background. O canal recebe a versão
// nova, ou é fechado vazio quando não há atualização.
func (app *CLIApp) checkForUpdate(ctx context.Context, logger *zap.Logger) <-chan string {
	if app.deps.Updates == nil {
		return nil
	}
	out := make(chan string, 1)
	go func() {
		defer close(out)
		latest, newer, err := app.deps.Updates.Check(ctx, app.version)
		if err != nil {
			logger.Debug("update check failed", zap.Error(err))
			return
		}
		if newer {
			out <- latest
		}
	}()
	return out
}

// notifyUpdate espera brevemente pelo resultado de checkForUpdate.
func (app *CLIApp) notifyUpdate(updates <-chan string) {
	if updates == nil {
		return
	}
	select {
	case latest, ok := <-updates:
		if ok {
			app.deps.Console.LogWarning("A new version of AWS Reservation Summary is available: %s", latest)
			app.deps.Console.LogInfo("Update with: go install github.com/diillson/aws-reservation-summary/cmd/aws-reservation-summary@latest")
		}
	case <-time.After(updateWaitTimeout):
	}
}

// runServe inicia a API HTTP e a encerra ao receber SIGINT/SIGTERM.
func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	_, cfg, logger, summaryUseCase, err := app.setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	addr, _ := cmd.Flags().GetString("addr")
	server := httpapi.NewServer(summaryUseCase, cfg, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(addr) }()

	app.deps.Console.LogInfo("Listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
