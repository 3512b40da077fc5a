package calculator

import (
	"strings"
	"testing"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryOptions(fx, tax string, prefs entity.ClassifyOptions) entity.SummaryOptions {
	return entity.SummaryOptions{
		ClassifyOptions: prefs,
		ExchangeRate:    dec(fx),
		TaxRatePercent:  dec(tax),
	}
}

func runPipeline(t *testing.T, raw string, opts entity.SummaryOptions) (entity.EstimateResult, string) {
	t.Helper()
	records, err := Parse([]byte(raw))
	require.NoError(t, err)
	result, _ := BuildEstimate(records, opts.ClassifyOptions)
	return result, Render(result, opts)
}

// TestRenderEndToEnd runs a compute row (No Upfront, 100/month) and a relational row
// (All Upfront, 500) in São Paulo with exchange rate 5.00 and 10% tax.
func TestRenderEndToEnd(t *testing.T) {
	opts := summaryOptions("5.00", "10", deferredPrefs)
	_, report := runPipeline(t, englishExport, opts)

	want := "Resumos dos recursos a serem reservados\n" +
		"Acme Corp - 123456789012\n" +
		"\n" +
		"São Paulo\n" +
		"EC2 Instances - 02 instâncias - Conta AWS 123456789012\n" +
		"Tipos de Instancias:\n" +
		"-2 - m5.large (Compute Savings Plans 1 Year No Upfront, Linux)\n" +
		"Valor total No Upfront: USD 100.00/mês\n" +
		"\n" +
		"RDS - 01 instâncias - Conta AWS 123456789012\n" +
		"Tipos de Instancias:\n" +
		"-1 - db.t3.medium (Single AZ, All Upfront, 1 ano, Amazon RDS for PostgreSQL)\n" +
		"Valor total All Upfront: USD 500.00/ano\n" +
		"\n" +
		"Resumo financeiro All Upfront:\n" +
		"Valor total (sem imposto): USD 500.00/ano\n" +
		"Impostos: USD 50.00/ano\n" +
		"Valor do dólar (aproximado): R$ 5.00\n" +
		"Valor total em reais (com imposto): R$ 2,750.00/ano\n" +
		"Parcelamento TdSynnex(com imposto): 06x R$ 458.33 via TdSynnex\n" +
		"\n" +
		"Resumo financeiro No Upfront:\n" +
		"Valor total (sem imposto): USD 1,200.00/ano\n" +
		"Impostos: USD 120.00/ano\n" +
		"Valor do dólar (aproximado): R$ 5.00\n" +
		"Valor total em reais (com imposto): 12x R$ 550.00 via AWS\n"

	assert.Equal(t, want, report)
}

func TestRenderIsIdempotent(t *testing.T) {
	opts := summaryOptions("5.50", "13.83", upfrontPrefs)
	_, first := runPipeline(t, englishExport, opts)
	_, second := runPipeline(t, englishExport, opts)
	assert.Equal(t, first, second)
}

func TestFinancialPlans(t *testing.T) {
	totals := entity.Totals{GrandDeferred: dec("100"), GrandUpfront: dec("500")}
	opts := summaryOptions("5", "10", deferredPrefs)

	upfront := UpfrontPlan(totals, opts)
	require.NotNil(t, upfront)
	assertDecimal(t, "500", upfront.Total)
	assertDecimal(t, "50", upfront.Tax)
	assertDecimal(t, "2750", upfront.Converted)
	assert.Equal(t, 6, upfront.Installments)
	assert.Equal(t, "458.33", upfront.Installment.StringFixed(2))

	deferred := DeferredPlan(totals, opts)
	require.NotNil(t, deferred)
	assertDecimal(t, "1200", deferred.Total)
	assertDecimal(t, "120", deferred.Tax)
	assertDecimal(t, "6600", deferred.Converted)
	assert.Equal(t, 12, deferred.Installments)
	assertDecimal(t, "550", deferred.Installment)

	assert.Nil(t, UpfrontPlan(entity.Totals{}, opts))
	assert.Nil(t, DeferredPlan(entity.Totals{}, opts))
}

const mixedExport = "Detailed Estimate\n" +
	"Group hierarchy,Region,Service,Upfront,Monthly,Configuration summary\n" +
	"Beta - 111122223333 > All Upfront,US East (N. Virginia),AWS Lambda,0,100,\n" +
	"Beta - 111122223333 > All Upfront,US East (N. Virginia),AWS Fargate,0,200,\"Operating system (Linux), CPU Architecture (ARM)\"\n" +
	"Beta - 111122223333 > No Upfront,US East (N. Virginia),Amazon CloudFront,0,300,\n" +
	"Beta - 111122223333 > All Upfront,US East (N. Virginia),Amazon ElastiCache,400,10,\"Instance type (cache.t2.micro), Nodes (2), Valkey\"\n" +
	"Beta - 111122223333 > All Upfront,US East (Ohio),Amazon EC2,1000,0,\"Advance EC2 instance (r6i.large), Number of instances: 3\"\n" +
	"Beta - 111122223333 > No Upfront,US East (Ohio),Amazon S3,0,25,\n"

// TestRenderFamiliesAndConservation checks the per-family templates and that the grand
// totals equal the sum of the item costs, with function and container upfront costs
// counted twelve times.
func TestRenderFamiliesAndConservation(t *testing.T) {
	opts := summaryOptions("5", "0", upfrontPrefs)
	result, report := runPipeline(t, mixedExport, opts)

	assert.Contains(t, report, "Lambda - Conta AWS 111122223333\n"+
		"Forma de pagamento: All Upfront 06x pela TdSynnex\n"+
		"Valor total All Upfront: USD 996.00/ano\n")
	assert.Contains(t, report, "ECS fargate - N. Virginia - Conta AWS 111122223333\n"+
		"Período: 1 ano\n"+
		"Forma de pagamento: All Upfront 06x pela TdSynnex\n"+
		"Configuração: Linux ARM\n"+
		"Valor total All Upfront: USD 1,752.00/ano\n")
	assert.Contains(t, report, "CloudFront - Conta AWS 111122223333\n"+
		"Período: 1 ano\n"+
		"Forma de pagamento: No Upfront em 12x pela AWS\n"+
		"Valor total mensal: USD 210.00 (sem impostos)\n")
	assert.Contains(t, report, "N. Virginia\nElastiCache - 02 nós - Conta AWS 111122223333\n"+
		"Tipos de Instancias:\n"+
		"-2 - cache.t2.micro (Heavy Utilization, 1 ano, Valkey)\n"+
		"Valor total All Upfront: USD 10.00/ano\n")
	assert.Contains(t, report, "US East (Ohio)\nEC2 Instances - 03 instâncias - Conta AWS 111122223333\n"+
		"Tipos de Instancias:\n"+
		"-3 - r6i.large (N/A, N/A)\n"+
		"Valor total All Upfront: USD 1,000.00/ano\n")
	assert.NotContains(t, report, "S3")

	// Family order inside a region: cache, CDN, function, container.
	cache := strings.Index(report, "ElastiCache -")
	cdn := strings.Index(report, "CloudFront -")
	lambda := strings.Index(report, "Lambda -")
	fargate := strings.Index(report, "ECS fargate -")
	assert.True(t, cache < cdn && cdn < lambda && lambda < fargate)

	totals := ComputeTotals(result)
	deferredSum := dec("0")
	upfrontSum := dec("0")
	for _, it := range Items(result) {
		switch {
		case it.PaymentMode == entity.PaymentDeferred:
			deferredSum = deferredSum.Add(it.Cost)
		case it.Family == entity.FamilyFunction || it.Family == entity.FamilyContainer:
			upfrontSum = upfrontSum.Add(it.Cost.Mul(dec("12")))
		default:
			upfrontSum = upfrontSum.Add(it.Cost)
		}
	}
	assert.True(t, deferredSum.Equal(totals.GrandDeferred), "deferred %s vs %s", deferredSum, totals.GrandDeferred)
	assert.True(t, upfrontSum.Equal(totals.GrandUpfront), "upfront %s vs %s", upfrontSum, totals.GrandUpfront)

	assertDecimal(t, "210", totals.GrandDeferred)
	assertDecimal(t, "3758", totals.GrandUpfront)
	assert.Contains(t, report, "Valor total (sem imposto): USD 3,758.00/ano\n")
	assert.Contains(t, report, "Valor total (sem imposto): USD 2,520.00/ano\n")
}

func TestRenderEmptyEstimate(t *testing.T) {
	report := Render(entity.EstimateResult{}, summaryOptions("5", "10", deferredPrefs))
	assert.Equal(t, "Resumos dos recursos a serem reservados\n - \n\n", report)
}

func TestRegionDisplayName(t *testing.T) {
	assert.Equal(t, "N. Virginia", RegionDisplayName("Leste dos EUA (N. da Virgínia)"))
	assert.Equal(t, "N. Virginia", RegionDisplayName("US East (N. Virginia)"))
	assert.Equal(t, "São Paulo", RegionDisplayName("América do Sul (São Paulo)"))
	assert.Equal(t, "São Paulo", RegionDisplayName("South America (São Paulo)"))
	assert.Equal(t, "US West (Oregon)", RegionDisplayName("US West (Oregon)"))
}

func TestSummaryOptionsValidate(t *testing.T) {
	assert.NoError(t, summaryOptions("5.5", "13.83", deferredPrefs).Validate())
	assert.NoError(t, summaryOptions("0.01", "100", deferredPrefs).Validate())
	assert.ErrorIs(t, summaryOptions("0", "10", deferredPrefs).Validate(), types.ErrInvalidOptions)
	assert.ErrorIs(t, summaryOptions("5", "-1", deferredPrefs).Validate(), types.ErrInvalidOptions)
	assert.ErrorIs(t, summaryOptions("5", "100.5", deferredPrefs).Validate(), types.ErrInvalidOptions)
}
