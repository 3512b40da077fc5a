package calculator

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/samber/lo"
)

// regionAlias collapses the calculator's region names into the names used in the report.
type regionAlias struct {
	markers []string
	name    string
}

var regionAliases = []regionAlias{
	{markers: []string{"N. da Virgínia", "N. Virginia", "Leste dos EUA"}, name: "N. Virginia"},
	{markers: saoPauloMarkers, name: "São Paulo"},
}

// RegionDisplayName returns the report name of a region.
func RegionDisplayName(region string) string {
	for _, alias := range regionAliases {
		if containsAny(region, alias.markers) {
			return alias.name
		}
	}
	return region
}

// familyBlock is the data one family template needs to write its block.
type familyBlock struct {
	regionName string
	accountID  string
	items      []entity.ClassifiedLineItem
	total      entity.FamilyTotal
	opts       entity.SummaryOptions
}

func (fb familyBlock) quantity() int {
	return lo.SumBy(fb.items, func(i entity.ClassifiedLineItem) int { return i.Quantity })
}

type familyTemplate func(b *strings.Builder, fb familyBlock)

var familyTemplates = map[entity.ServiceFamily]familyTemplate{
	entity.FamilyCompute:      renderCompute,
	entity.FamilyRelationalDB: renderRelationalDB,
	entity.FamilyCache:        renderCache,
	entity.FamilyCDN:          renderCDN,
	entity.FamilyFunction:     renderFunction,
	entity.FamilyContainer:    renderContainer,
}

// Render writes the reservation summary for result. Totals are the ones ComputeTotals
// returns, so the financial blocks always match the per-family lines.
func Render(result entity.EstimateResult, opts entity.SummaryOptions) string {
	totals := ComputeTotals(result)

	var b strings.Builder
	b.WriteString("Resumos dos recursos a serem reservados\n")
	fmt.Fprintf(&b, "%s - %s\n\n", result.ClientName, result.AccountID)

	byRegion := lo.GroupBy(totals.Families, func(ft entity.FamilyTotal) string { return ft.Region })

	for _, region := range result.Regions {
		familyTotals, ok := byRegion[region]
		if !ok {
			continue
		}
		regionName := RegionDisplayName(region)
		b.WriteString(regionName + "\n")

		for _, ft := range familyTotals {
			familyTemplates[ft.Family](&b, familyBlock{
				regionName: regionName,
				accountID:  result.AccountID,
				items:      result.ServicesByRegion[region][ft.Family],
				total:      ft,
				opts:       opts,
			})
			b.WriteString("\n")
		}
	}

	if plan := UpfrontPlan(totals, opts); plan != nil {
		b.WriteString("Resumo financeiro All Upfront:\n")
		fmt.Fprintf(&b, "Valor total (sem imposto): USD %s/ano\n", formatMoney(plan.Total))
		fmt.Fprintf(&b, "Impostos: USD %s/ano\n", formatMoney(plan.Tax))
		fmt.Fprintf(&b, "Valor do dólar (aproximado): R$ %s\n", plan.ExchangeRate.StringFixed(2))
		fmt.Fprintf(&b, "Valor total em reais (com imposto): R$ %s/ano\n", formatMoney(plan.Converted))
		fmt.Fprintf(&b, "Parcelamento TdSynnex(com imposto): %02dx R$ %s via TdSynnex\n\n", plan.Installments, formatMoney(plan.Installment))
	}

	if plan := DeferredPlan(totals, opts); plan != nil {
		b.WriteString("Resumo financeiro No Upfront:\n")
		fmt.Fprintf(&b, "Valor total (sem imposto): USD %s/ano\n", formatMoney(plan.Total))
		fmt.Fprintf(&b, "Impostos: USD %s/ano\n", formatMoney(plan.Tax))
		fmt.Fprintf(&b, "Valor do dólar (aproximado): R$ %s\n", plan.ExchangeRate.StringFixed(2))
		fmt.Fprintf(&b, "Valor total em reais (com imposto): %dx R$ %s via AWS\n", plan.Installments, formatMoney(plan.Installment))
	}

	return b.String()
}

// writeTotals writes the "Valor total" lines. annualize multiplies the upfront line by
// twelve for families priced per month under All Upfront.
func writeTotals(b *strings.Builder, ft entity.FamilyTotal, annualize bool) {
	if ft.Deferred.IsPositive() {
		fmt.Fprintf(b, "Valor total No Upfront: USD %s/mês\n", formatMoney(ft.Deferred))
	}
	if ft.Upfront.IsPositive() {
		upfront := ft.Upfront
		if annualize {
			upfront = upfront.Mul(monthsPerYear)
		}
		fmt.Fprintf(b, "Valor total All Upfront: USD %s/ano\n", formatMoney(upfront))
	}
}

func renderCompute(b *strings.Builder, fb familyBlock) {
	fmt.Fprintf(b, "EC2 Instances - %02d instâncias - Conta AWS %s\n", fb.quantity(), fb.accountID)
	b.WriteString("Tipos de Instancias:\n")
	for _, i := range fb.items {
		fmt.Fprintf(b, "-%d - %s (%s, %s)\n", i.Quantity, i.Type, i.Spec(0, "N/A"), i.Spec(1, "N/A"))
	}
	writeTotals(b, fb.total, false)
}

func renderRelationalDB(b *strings.Builder, fb familyBlock) {
	fmt.Fprintf(b, "RDS - %02d instâncias - Conta AWS %s\n", fb.quantity(), fb.accountID)
	b.WriteString("Tipos de Instancias:\n")
	for _, i := range fb.items {
		fmt.Fprintf(b, "-%d - %s (%s, %s, %s, %s)\n",
			i.Quantity, i.Type, i.Spec(0, "N/A"), i.PaymentMode, i.Spec(2, "N/A"), i.Spec(3, "N/A"))
	}
	writeTotals(b, fb.total, false)
}

func renderCache(b *strings.Builder, fb familyBlock) {
	fmt.Fprintf(b, "ElastiCache - %02d nós - Conta AWS %s\n", fb.quantity(), fb.accountID)
	b.WriteString("Tipos de Instancias:\n")
	for _, i := range fb.items {
		fmt.Fprintf(b, "-%d - %s (%s, %s, %s)\n", i.Quantity, i.Type, i.PaymentMode, i.Spec(1, "N/A"), i.Spec(2, "N/A"))
	}
	writeTotals(b, fb.total, false)
}

func renderCDN(b *strings.Builder, fb familyBlock) {
	fmt.Fprintf(b, "CloudFront - Conta AWS %s\n", fb.accountID)
	b.WriteString("Período: 1 ano\n")
	b.WriteString("Forma de pagamento: No Upfront em 12x pela AWS\n")
	fmt.Fprintf(b, "Valor total mensal: USD %s (sem impostos)\n", formatMoney(fb.total.Deferred))
}

func renderFunction(b *strings.Builder, fb familyBlock) {
	fmt.Fprintf(b, "Lambda - Conta AWS %s\n", fb.accountID)
	fmt.Fprintf(b, "Forma de pagamento: %s\n", fb.opts.LambdaPayment)
	writeTotals(b, fb.total, true)
}

func renderContainer(b *strings.Builder, fb familyBlock) {
	fmt.Fprintf(b, "ECS fargate - %s - Conta AWS %s\n", fb.regionName, fb.accountID)
	b.WriteString("Período: 1 ano\n")
	fmt.Fprintf(b, "Forma de pagamento: %s\n", fb.opts.FargatePayment)
	for _, i := range fb.items {
		fmt.Fprintf(b, "Configuração: %s %s\n", i.Spec(1, "Linux"), i.Spec(0, "x86"))
	}
	writeTotals(b, fb.total, true)
}
