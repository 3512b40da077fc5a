package entity

import "github.com/shopspring/decimal"

// ServiceFamily identifica a família de serviço usada para agrupar os itens do resumo.
type ServiceFamily string

const (
	FamilyCompute      ServiceFamily = "EC2"
	FamilyRelationalDB ServiceFamily = "RDS"
	FamilyCache        ServiceFamily = "ElastiCache"
	FamilyCDN          ServiceFamily = "CloudFront"
	FamilyFunction     ServiceFamily = "Lambda"
	FamilyContainer    ServiceFamily = "Fargate"
	FamilyUnclassified ServiceFamily = ""
)

// ReportFamilyOrder is the fixed order in which families are rendered inside a region.
var ReportFamilyOrder = []ServiceFamily{
	FamilyCompute,
	FamilyRelationalDB,
	FamilyCache,
	FamilyCDN,
	FamilyFunction,
	FamilyContainer,
}

// PaymentMode representa a forma de pagamento de um item.
type PaymentMode string

const (
	PaymentDeferred         PaymentMode = "No Upfront"
	PaymentUpfront          PaymentMode = "All Upfront"
	PaymentHeavyUtilization PaymentMode = "Heavy Utilization"
)

// IsUpfront reports whether the mode is billed as a single annual charge.
// Heavy Utilization is treated as upfront for aggregation.
func (m PaymentMode) IsUpfront() bool {
	return m == PaymentUpfront || m == PaymentHeavyUtilization
}

// RawRecord é uma linha da seção "Estimativa detalhada" já normalizada para o esquema canônico.
type RawRecord struct {
	Hierarchy string          `json:"group_hierarchy"`
	Region    string          `json:"region"`
	Service   string          `json:"service"`
	Upfront   decimal.Decimal `json:"upfront"`
	Monthly   decimal.Decimal `json:"monthly"`
	Config    string          `json:"configuration_summary"`
}

// InstanceSpec descreve o recurso extraído do resumo de configuração.
type InstanceSpec struct {
	Type     string   `json:"type"`
	Quantity int      `json:"quantity"`
	Specs    []string `json:"specs"`
}

// DefaultInstanceSpec returns the spec used when nothing can be extracted.
func DefaultInstanceSpec() InstanceSpec {
	return InstanceSpec{Type: "N/A", Quantity: 1, Specs: []string{}}
}

// Spec returns the auxiliary descriptor at index i, or fallback when absent.
func (s InstanceSpec) Spec(i int, fallback string) string {
	if i < 0 || i >= len(s.Specs) {
		return fallback
	}
	return s.Specs[i]
}

// ClassifiedLineItem é uma linha classificada, com custo e forma de pagamento finais.
type ClassifiedLineItem struct {
	InstanceSpec
	Region      string          `json:"region"`
	Family      ServiceFamily   `json:"family"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	Cost        decimal.Decimal `json:"cost"`
	Upfront     decimal.Decimal `json:"upfront"`
	ServiceName string          `json:"service_name"`
	Config      string          `json:"config"`
}

// RegionBucket agrupa os itens de uma região por família de serviço.
type RegionBucket map[ServiceFamily][]ClassifiedLineItem

// EstimateResult é o resultado agregado de um arquivo de estimativa.
type EstimateResult struct {
	ClientName       string                  `json:"client_name"`
	AccountID        string                  `json:"account_id"`
	Regions          []string                `json:"regions"`
	ServicesByRegion map[string]RegionBucket `json:"services_by_region"`
}

// ItemCount returns the number of classified line items across every region.
func (r EstimateResult) ItemCount() int {
	count := 0
	for _, bucket := range r.ServicesByRegion {
		for _, items := range bucket {
			count += len(items)
		}
	}
	return count
}
