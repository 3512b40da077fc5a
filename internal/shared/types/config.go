package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	ExchangeRate   float64  `json:"exchange_rate" yaml:"exchange_rate" toml:"exchange_rate"`
	TaxRate        float64  `json:"tax_rate" yaml:"tax_rate" toml:"tax_rate"`
	LambdaPayment  string   `json:"lambda_payment" yaml:"lambda_payment" toml:"lambda_payment"`
	FargatePayment string   `json:"fargate_payment" yaml:"fargate_payment" toml:"fargate_payment"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	Profile        string   `json:"profile" yaml:"profile" toml:"profile"`
	ResolveAccount bool     `json:"resolve_account" yaml:"resolve_account" toml:"resolve_account"`
	LogLevel       string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat      string   `json:"log_format" yaml:"log_format" toml:"log_format"`
}

// Valores padrão usados quando nem a flag nem o arquivo de configuração definem a opção.
const (
	DefaultExchangeRate = 5.50
	DefaultTaxRate      = 13.83

	PaymentNoUpfrontAWS       = "No Upfront 12x pela AWS"
	PaymentAllUpfrontTdSynnex = "All Upfront 06x pela TdSynnex"
)

// PaymentPresets lista as formas de pagamento oferecidas para Lambda e Fargate.
var PaymentPresets = []string{PaymentNoUpfrontAWS, PaymentAllUpfrontTdSynnex}

// Formatos de exportação aceitos por --report-type e report_type.
const (
	ReportTypeTXT  = "txt"
	ReportTypeJSON = "json"
	ReportTypeCSV  = "csv"
	ReportTypePDF  = "pdf"
)

// SupportedReportTypes lista os formatos de exportação na ordem em que são gerados.
var SupportedReportTypes = []string{ReportTypeTXT, ReportTypeJSON, ReportTypeCSV, ReportTypePDF}

// IsSupportedReportType informa se t é um formato de exportação conhecido.
func IsSupportedReportType(t string) bool {
	for _, s := range SupportedReportTypes {
		if s == t {
			return true
		}
	}
	return false
}
