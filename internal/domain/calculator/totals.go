package calculator

import (
	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

const (
	upfrontInstallments  = 6
	deferredInstallments = 12
)

// annualizedFamilies have a monthly-equivalent cost even under All Upfront, so their
// upfront totals are multiplied by twelve.
var annualizedFamilies = []entity.ServiceFamily{entity.FamilyFunction, entity.FamilyContainer}

func sumCost(items []entity.ClassifiedLineItem, keep func(entity.PaymentMode) bool) decimal.Decimal {
	selected := lo.Filter(items, func(i entity.ClassifiedLineItem, _ int) bool {
		return keep(i.PaymentMode)
	})
	return lo.Reduce(selected, func(acc decimal.Decimal, i entity.ClassifiedLineItem, _ int) decimal.Decimal {
		return acc.Add(i.Cost)
	}, decimal.Zero)
}

func isDeferred(m entity.PaymentMode) bool { return m == entity.PaymentDeferred }

// ComputeTotals sums each non-empty bucket by payment mode and folds the buckets into the
// two grand totals used by the financial summary.
func ComputeTotals(result entity.EstimateResult) entity.Totals {
	totals := entity.Totals{
		Families:      []entity.FamilyTotal{},
		GrandDeferred: decimal.Zero,
		GrandUpfront:  decimal.Zero,
	}

	for _, region := range result.Regions {
		bucket, ok := result.ServicesByRegion[region]
		if !ok {
			continue
		}
		for _, family := range entity.ReportFamilyOrder {
			items := bucket[family]
			if len(items) == 0 {
				continue
			}

			ft := entity.FamilyTotal{
				Region:   region,
				Family:   family,
				Deferred: sumCost(items, isDeferred),
				Upfront:  sumCost(items, entity.PaymentMode.IsUpfront),
			}
			totals.Families = append(totals.Families, ft)

			totals.GrandDeferred = totals.GrandDeferred.Add(ft.Deferred)
			if lo.Contains(annualizedFamilies, family) {
				totals.GrandUpfront = totals.GrandUpfront.Add(ft.Upfront.Mul(monthsPerYear))
			} else {
				totals.GrandUpfront = totals.GrandUpfront.Add(ft.Upfront)
			}
		}
	}

	return totals
}

// UpfrontPlan builds the All Upfront block: tax over the annual total, conversion, six
// installments. It returns nil when there is nothing to pay upfront.
func UpfrontPlan(totals entity.Totals, opts entity.SummaryOptions) *entity.FinancialPlan {
	if !totals.GrandUpfront.IsPositive() {
		return nil
	}
	return buildPlan(entity.PaymentUpfront, totals.GrandUpfront, upfrontInstallments, opts)
}

// DeferredPlan builds the No Upfront block over the monthly total annualized.
func DeferredPlan(totals entity.Totals, opts entity.SummaryOptions) *entity.FinancialPlan {
	if !totals.GrandDeferred.IsPositive() {
		return nil
	}
	return buildPlan(entity.PaymentDeferred, totals.GrandDeferred.Mul(monthsPerYear), deferredInstallments, opts)
}

func buildPlan(mode entity.PaymentMode, total decimal.Decimal, installments int, opts entity.SummaryOptions) *entity.FinancialPlan {
	tax := total.Mul(opts.TaxRatePercent).Div(hundred)
	converted := total.Add(tax).Mul(opts.ExchangeRate)
	return &entity.FinancialPlan{
		Mode:         mode,
		Total:        total,
		Tax:          tax,
		ExchangeRate: opts.ExchangeRate,
		Converted:    converted,
		Installments: installments,
		Installment:  converted.Div(decimal.NewFromInt(int64(installments))),
	}
}
