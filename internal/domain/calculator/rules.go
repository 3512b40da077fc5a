package calculator

import (
	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// regionClass separa São Paulo das demais regiões para a escolha dos descontos.
type regionClass int

const (
	regionOther regionClass = iota
	regionSaoPaulo
)

var saoPauloMarkers = []string{"São Paulo", "América do Sul", "South America"}

func classifyRegion(region string) regionClass {
	if containsAny(region, saoPauloMarkers) {
		return regionSaoPaulo
	}
	return regionOther
}

// Marcadores de forma de pagamento na hierarquia de grupos.
var (
	allUpfrontMarkers = []string{"All Upfront", "ALL Upfront", "All UpFront"}
	noUpfrontMarkers  = []string{"No Upfront", "No UpFront", "No-UpFront"}
	onDemandMarkers   = []string{"On-demand", "On Demand", "On-Demand"}
)

const (
	heavyUtilizationMarker = "Heavy Utilization"
	// Cache nodes of this type are always billed as Heavy Utilization under All Upfront.
	heavyCacheTypeMarker = "cache.t2.micro"
)

var cdnDiscount = decimal.RequireFromString("0.70")

var lambdaDiscounts = map[regionClass]map[entity.PaymentMode]decimal.Decimal{
	regionSaoPaulo: {
		entity.PaymentUpfront:  decimal.RequireFromString("0.85"),
		entity.PaymentDeferred: decimal.RequireFromString("0.90"),
	},
	regionOther: {
		entity.PaymentUpfront:  decimal.RequireFromString("0.83"),
		entity.PaymentDeferred: decimal.RequireFromString("0.88"),
	},
}

type fargateKey struct {
	region regionClass
	mode   entity.PaymentMode
	arm    bool
}

var fargateDiscounts = map[fargateKey]decimal.Decimal{
	{regionSaoPaulo, entity.PaymentUpfront, true}:   decimal.RequireFromString("0.74"),
	{regionSaoPaulo, entity.PaymentUpfront, false}:  decimal.RequireFromString("0.78"),
	{regionSaoPaulo, entity.PaymentDeferred, true}:  decimal.RequireFromString("0.79"),
	{regionSaoPaulo, entity.PaymentDeferred, false}: decimal.RequireFromString("0.85"),
	{regionOther, entity.PaymentUpfront, true}:      decimal.RequireFromString("0.73"),
	{regionOther, entity.PaymentUpfront, false}:     decimal.RequireFromString("0.73"),
	{regionOther, entity.PaymentDeferred, true}:     decimal.RequireFromString("0.79"),
	{regionOther, entity.PaymentDeferred, false}:    decimal.RequireFromString("0.80"),
}

// Crédito de armazenamento de 20 GB descontado do RDS No Upfront.
var (
	rdsStorageMarkers = []string{"Quantidade de armazenamento (20 GB)", "Storage amount (20 GB)"}
	rdsStorageCredit  = map[regionClass]decimal.Decimal{
		regionSaoPaulo: decimal.RequireFromString("4.38"),
		regionOther:    decimal.RequireFromString("2.30"),
	}
)

// pricing is the payment mode and monthly-equivalent cost of a row at some point of the rules.
type pricing struct {
	mode entity.PaymentMode
	cost decimal.Decimal
}

// pricingRule overrides the baseline pricing for the services whose label it matches.
type pricingRule struct {
	markers []string
	// final rules are not touched by the zero-upfront correction.
	final bool
	// keepOnDemand rows survive the On-Demand filter.
	keepOnDemand bool
	apply        func(rec entity.RawRecord, base pricing, opts entity.ClassifyOptions) pricing
}

// Rules in evaluation order; the first whose marker is in the service label applies.
var pricingRules = []pricingRule{
	{
		markers:      []string{"CloudFront"},
		final:        true,
		keepOnDemand: true,
		apply:        priceCloudFront,
	},
	{
		markers:      []string{"AWS Lambda", "Lambda"},
		final:        true,
		keepOnDemand: true,
		apply:        priceLambda,
	},
	{
		markers:      []string{"AWS Fargate", "Fargate"},
		final:        true,
		keepOnDemand: true,
		apply:        priceFargate,
	},
	{
		markers: []string{"RDS", "Aurora"},
		final:   true,
		apply:   priceRDS,
	},
}

func matchPricingRule(service string) (pricingRule, bool) {
	for _, rule := range pricingRules {
		if containsAny(service, rule.markers) {
			return rule, true
		}
	}
	return pricingRule{}, false
}

// baselinePricing reads the payment mode from the group hierarchy and the configuration.
func baselinePricing(rec entity.RawRecord) pricing {
	switch {
	case containsAny(rec.Hierarchy, allUpfrontMarkers):
		mode := entity.PaymentUpfront
		if containsAny(rec.Service, []string{"ElastiCache"}) && containsAny(rec.Config, []string{heavyCacheTypeMarker}) {
			mode = entity.PaymentHeavyUtilization
		}
		return pricing{mode: mode, cost: rec.Upfront}
	case containsAny(rec.Config, []string{heavyUtilizationMarker}):
		return pricing{mode: entity.PaymentHeavyUtilization, cost: rec.Upfront}
	case containsAny(rec.Hierarchy, noUpfrontMarkers):
		return pricing{mode: entity.PaymentDeferred, cost: rec.Monthly}
	default:
		return pricing{mode: entity.PaymentDeferred, cost: rec.Monthly}
	}
}

// priceDefault: only All Upfront reads the upfront column; Heavy Utilization keeps its mode
// but is costed from the monthly column.
func priceDefault(rec entity.RawRecord, base pricing) pricing {
	if base.mode == entity.PaymentUpfront {
		return pricing{mode: base.mode, cost: rec.Upfront}
	}
	return pricing{mode: base.mode, cost: rec.Monthly}
}

func priceCloudFront(rec entity.RawRecord, _ pricing, _ entity.ClassifyOptions) pricing {
	base := rec.Monthly
	if !base.IsPositive() {
		base = rec.Upfront
	}
	return pricing{mode: entity.PaymentDeferred, cost: base.Mul(cdnDiscount)}
}

func priceLambda(rec entity.RawRecord, _ pricing, opts entity.ClassifyOptions) pricing {
	mode := opts.LambdaMode()

	base := rec.Monthly
	if mode == entity.PaymentUpfront && rec.Upfront.IsPositive() {
		base = rec.Upfront
	}

	discount := lambdaDiscounts[classifyRegion(rec.Region)][mode]
	return pricing{mode: mode, cost: base.Mul(discount)}
}

func priceFargate(rec entity.RawRecord, _ pricing, opts entity.ClassifyOptions) pricing {
	mode := opts.FargateMode()
	key := fargateKey{
		region: classifyRegion(rec.Region),
		mode:   mode,
		arm:    containsAny(rec.Config, []string{"ARM"}),
	}
	return pricing{mode: mode, cost: rec.Monthly.Mul(fargateDiscounts[key])}
}

func priceRDS(rec entity.RawRecord, base pricing, _ entity.ClassifyOptions) pricing {
	if base.mode != entity.PaymentDeferred {
		return pricing{mode: base.mode, cost: rec.Upfront}
	}
	cost := rec.Monthly
	if containsAny(rec.Config, rdsStorageMarkers) {
		cost = cost.Sub(rdsStorageCredit[classifyRegion(rec.Region)])
	}
	return pricing{mode: base.mode, cost: cost}
}
