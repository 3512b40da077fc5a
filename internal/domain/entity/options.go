package entity

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/shopspring/decimal"
)

// ClassifyOptions carries the caller's payment-plan preferences for Lambda and Fargate.
type ClassifyOptions struct {
	LambdaPayment  string `json:"lambda_payment"`
	FargatePayment string `json:"fargate_payment"`
}

// LambdaMode resolves the Lambda preference to a payment mode.
func (o ClassifyOptions) LambdaMode() PaymentMode {
	return preferenceMode(o.LambdaPayment)
}

// FargateMode resolves the Fargate preference to a payment mode.
func (o ClassifyOptions) FargateMode() PaymentMode {
	return preferenceMode(o.FargatePayment)
}

func preferenceMode(preference string) PaymentMode {
	if strings.Contains(preference, "All Upfront") {
		return PaymentUpfront
	}
	return PaymentDeferred
}

// SummaryOptions são as opções imutáveis de uma execução do resumo.
type SummaryOptions struct {
	ClassifyOptions
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	TaxRatePercent decimal.Decimal `json:"tax_rate"`
}

// DefaultSummaryOptions retorna as opções padrão (câmbio 5,50, imposto 13,83%, No Upfront).
func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{
		ClassifyOptions: ClassifyOptions{
			LambdaPayment:  types.PaymentNoUpfrontAWS,
			FargatePayment: types.PaymentNoUpfrontAWS,
		},
		ExchangeRate:   decimal.NewFromFloat(types.DefaultExchangeRate),
		TaxRatePercent: decimal.NewFromFloat(types.DefaultTaxRate),
	}
}

// Validate checks the exchange rate is positive and the tax rate is a percentage.
func (o SummaryOptions) Validate() error {
	if !o.ExchangeRate.IsPositive() {
		return fmt.Errorf("%w: exchange rate must be greater than zero, got %s", types.ErrInvalidOptions, o.ExchangeRate)
	}
	if o.TaxRatePercent.IsNegative() || o.TaxRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100, got %s", types.ErrInvalidOptions, o.TaxRatePercent)
	}
	return nil
}
