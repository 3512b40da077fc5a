package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FamilyTotal é o total de uma família em uma região, separado por forma de pagamento.
type FamilyTotal struct {
	Region   string          `json:"region"`
	Family   ServiceFamily   `json:"family"`
	Deferred decimal.Decimal `json:"no_upfront"`
	Upfront  decimal.Decimal `json:"all_upfront"`
}

// Totals reúne os totais por família e os dois totais gerais.
type Totals struct {
	Families      []FamilyTotal   `json:"families"`
	GrandDeferred decimal.Decimal `json:"grand_no_upfront"`
	GrandUpfront  decimal.Decimal `json:"grand_all_upfront"`
}

// FinancialPlan é o bloco de resumo financeiro de um plano de pagamento.
type FinancialPlan struct {
	Mode         PaymentMode     `json:"mode"`
	Total        decimal.Decimal `json:"total"`
	Tax          decimal.Decimal `json:"tax"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Converted    decimal.Decimal `json:"converted"`
	Installments int             `json:"installments"`
	Installment  decimal.Decimal `json:"installment"`
}

// SummaryReport is everything one run produced, as exported to JSON.
type SummaryReport struct {
	RunID        string               `json:"run_id"`
	GeneratedAt  time.Time            `json:"generated_at"`
	ClientName   string               `json:"client_name"`
	AccountID    string               `json:"account_id"`
	Regions      []string             `json:"regions"`
	Items        []ClassifiedLineItem `json:"items"`
	RecordCount  int                  `json:"record_count"`
	DroppedCount int                  `json:"dropped_count"`
	Totals       Totals               `json:"totals"`
	UpfrontPlan  *FinancialPlan       `json:"all_upfront_plan,omitempty"`
	DeferredPlan *FinancialPlan       `json:"no_upfront_plan,omitempty"`
	Options      SummaryOptions       `json:"options"`
	Warnings     []string             `json:"warnings,omitempty"`
	Summary      string               `json:"summary"`
}
