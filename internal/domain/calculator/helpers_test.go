package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

const englishExport = "\ufeffEstimate summary\r\n" +
	"Upfront cost,Monthly cost,Total 12 months cost,Currency\r\n" +
	"500,100,1700,USD\r\n" +
	"\r\n" +
	"Detailed Estimate\r\n" +
	"Group hierarchy,Region,Description,Service,Upfront,Monthly,First 12 months total,Currency,Status,Configuration summary\r\n" +
	"Acme Corp - 123456789012 > No Upfront,South America (São Paulo),,Amazon EC2,0,100,1200,USD,," +
	"\"Advance EC2 instance (m5.large), Number of instances: 2, Pricing strategy (Compute Savings Plans 1 Year No Upfront), Operating system (Linux)\"\r\n" +
	"Acme Corp - 123456789012 > All Upfront,South America (São Paulo),,Amazon RDS for PostgreSQL,500,0,500,USD,," +
	"\"Storage amount (20 GB), Instance type (db.t3.medium), Nodes (1)\"\r\n" +
	"\r\n" +
	"Acknowledgement\r\n" +
	"AWS Pricing Calculator provides only an estimate of your AWS fees.\r\n"

const portugueseExport = "Resumo da estimativa\n" +
	"Estimativa detalhada\n" +
	"Hierarquia de grupos,Região,Descrição,Serviço,Pagamento adiantado,Mensal,Total dos primeiros 12 meses,Moeda,Status,Resumo da configuração\n" +
	"Cliente Alfa 998877665544 > No Upfront,América do Sul (São Paulo),,AWS Lambda,,40,480,USD,,\"Arquitetura (x86), Número de solicitações (10 milhões por mês)\"\n" +
	"Cliente Alfa 998877665544 > On-Demand,Leste dos EUA (N. da Virgínia),,Amazon EC2,0,70,840,USD,,\"Instância do EC2 avançada (t3.micro), Número de instâncias: 1\"\n" +
	"Confirmação\n"
