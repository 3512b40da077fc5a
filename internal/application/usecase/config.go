package usecase

import (
	"fmt"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/domain/repository"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/shopspring/decimal"
)

// DefaultConfig returns the values used when neither a config file nor a flag sets an option.
func DefaultConfig() *types.Config {
	return &types.Config{
		ExchangeRate:   types.DefaultExchangeRate,
		TaxRate:        types.DefaultTaxRate,
		LambdaPayment:  types.PaymentNoUpfrontAWS,
		FargatePayment: types.PaymentNoUpfrontAWS,
		LogLevel:       "warn",
		LogFormat:      "console",
	}
}

// ResolveConfig merges the defaults, the config file (when args names one) and the explicit
// CLI flags, in that order of precedence.
func ResolveConfig(configRepo repository.ConfigRepository, args *types.CLIArgs) (*types.Config, error) {
	cfg := DefaultConfig()

	if args.ConfigFile != "" {
		fileCfg, err := configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		overlayConfig(cfg, fileCfg)
	}

	overlayArgs(cfg, args)
	return cfg, nil
}

// overlayConfig copia para cfg apenas os campos definidos no arquivo.
func overlayConfig(cfg, file *types.Config) {
	if file.ExchangeRate != 0 {
		cfg.ExchangeRate = file.ExchangeRate
	}
	if file.TaxRate != 0 {
		cfg.TaxRate = file.TaxRate
	}
	if file.LambdaPayment != "" {
		cfg.LambdaPayment = file.LambdaPayment
	}
	if file.FargatePayment != "" {
		cfg.FargatePayment = file.FargatePayment
	}
	if file.ReportName != "" {
		cfg.ReportName = file.ReportName
	}
	if len(file.ReportType) > 0 {
		cfg.ReportType = file.ReportType
	}
	if file.Dir != "" {
		cfg.Dir = file.Dir
	}
	if file.Profile != "" {
		cfg.Profile = file.Profile
	}
	if file.ResolveAccount {
		cfg.ResolveAccount = true
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
}

// overlayArgs aplica as flags informadas explicitamente na linha de comando.
func overlayArgs(cfg *types.Config, args *types.CLIArgs) {
	if args.ExchangeRate != nil {
		cfg.ExchangeRate = *args.ExchangeRate
	}
	if args.TaxRate != nil {
		cfg.TaxRate = *args.TaxRate
	}
	if args.LambdaPayment != "" {
		cfg.LambdaPayment = args.LambdaPayment
	}
	if args.FargatePayment != "" {
		cfg.FargatePayment = args.FargatePayment
	}
	if args.ReportName != "" {
		cfg.ReportName = args.ReportName
	}
	if len(args.ReportType) > 0 {
		cfg.ReportType = args.ReportType
	}
	if args.Dir != "" {
		cfg.Dir = args.Dir
	}
	if args.Profile != "" {
		cfg.Profile = args.Profile
	}
	if args.ResolveAccount {
		cfg.ResolveAccount = true
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	if args.LogFormat != "" {
		cfg.LogFormat = args.LogFormat
	}
}

// SummaryOptionsFromConfig converts the merged configuration into calculator options.
func SummaryOptionsFromConfig(cfg *types.Config) entity.SummaryOptions {
	return entity.SummaryOptions{
		ClassifyOptions: entity.ClassifyOptions{
			LambdaPayment:  cfg.LambdaPayment,
			FargatePayment: cfg.FargatePayment,
		},
		ExchangeRate:   decimal.NewFromFloat(cfg.ExchangeRate),
		TaxRatePercent: decimal.NewFromFloat(cfg.TaxRate),
	}
}
