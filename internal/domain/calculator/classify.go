package calculator

import (
	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
)

// DropReason explica por que uma linha não entrou no resumo.
type DropReason string

const (
	NotDropped       DropReason = ""
	DropOnDemand     DropReason = "on-demand"
	DropUnclassified DropReason = "unclassified"
)

// familyMatcher associa marcadores do rótulo do serviço a uma família.
type familyMatcher struct {
	family  entity.ServiceFamily
	markers []string
}

// Families in classification priority; a label is assigned to the first that matches.
var familyMatchers = []familyMatcher{
	{family: entity.FamilyCompute, markers: []string{"EC2"}},
	{family: entity.FamilyRelationalDB, markers: []string{"RDS", "Aurora"}},
	{family: entity.FamilyCache, markers: []string{"ElastiCache"}},
	{family: entity.FamilyCDN, markers: []string{"CloudFront"}},
	{family: entity.FamilyFunction, markers: []string{"AWS Lambda", "Lambda"}},
	{family: entity.FamilyContainer, markers: []string{"AWS Fargate", "Fargate"}},
}

// ClassifyFamily returns the service family of a label, or FamilyUnclassified.
func ClassifyFamily(service string) entity.ServiceFamily {
	for _, m := range familyMatchers {
		if containsAny(service, m.markers) {
			return m.family
		}
	}
	return entity.FamilyUnclassified
}

// Classify prices one record and assigns it to a family. A non-empty DropReason means the
// row must be left out of the summary.
//
// Order: payment mode from the hierarchy, service-specific override, zero-upfront
// correction for services without an override, On-Demand filter, family classification.
func Classify(rec entity.RawRecord, opts entity.ClassifyOptions) (entity.ClassifiedLineItem, DropReason) {
	price := baselinePricing(rec)

	rule, matched := matchPricingRule(rec.Service)
	if matched {
		price = rule.apply(rec, price, opts)
	} else {
		price = priceDefault(rec, price)
	}

	if !(matched && rule.final) && rec.Upfront.IsZero() && rec.Monthly.IsPositive() {
		price = pricing{mode: entity.PaymentDeferred, cost: rec.Monthly}
	}

	if containsAny(rec.Hierarchy, onDemandMarkers) && !(matched && rule.keepOnDemand) {
		return entity.ClassifiedLineItem{}, DropOnDemand
	}

	family := ClassifyFamily(rec.Service)
	if family == entity.FamilyUnclassified {
		return entity.ClassifiedLineItem{}, DropUnclassified
	}

	return entity.ClassifiedLineItem{
		InstanceSpec: ExtractSpec(rec.Config, rec.Service),
		Region:       rec.Region,
		Family:       family,
		PaymentMode:  price.mode,
		Cost:         price.cost,
		Upfront:      rec.Upfront,
		ServiceName:  rec.Service,
		Config:       rec.Config,
	}, NotDropped
}
