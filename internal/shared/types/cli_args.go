package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	File           string
	ExchangeRate   *float64
	TaxRate        *float64
	LambdaPayment  string
	FargatePayment string
	ReportName     string
	ReportType     []string
	Dir            string
	Profile        string
	ResolveAccount bool
	LogLevel       string
	LogFormat      string
	NoBanner       bool
}
