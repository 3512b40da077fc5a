package calculator

import (
	"sort"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/samber/lo"
)

// DroppedRow é uma linha descartada e o motivo.
type DroppedRow struct {
	Record entity.RawRecord
	Reason DropReason
}

// Aggregate groups items by region and family, keeping first-seen order inside each
// bucket. Unclassified items are skipped and no empty bucket is ever created.
func Aggregate(items []entity.ClassifiedLineItem) entity.EstimateResult {
	result := entity.EstimateResult{
		Regions:          []string{},
		ServicesByRegion: make(map[string]entity.RegionBucket),
	}

	for _, item := range items {
		if item.Family == entity.FamilyUnclassified {
			continue
		}
		bucket, ok := result.ServicesByRegion[item.Region]
		if !ok {
			bucket = make(entity.RegionBucket)
			result.ServicesByRegion[item.Region] = bucket
			result.Regions = append(result.Regions, item.Region)
		}
		bucket[item.Family] = append(bucket[item.Family], item)
	}

	sort.Strings(result.Regions)
	return result
}

// BuildEstimate classifies every record and aggregates the kept items. The region set
// covers every record, dropped ones included, and the client identity comes from the
// first record's hierarchy.
func BuildEstimate(records []entity.RawRecord, opts entity.ClassifyOptions) (entity.EstimateResult, []DroppedRow) {
	items := make([]entity.ClassifiedLineItem, 0, len(records))
	var dropped []DroppedRow

	for _, rec := range records {
		item, reason := Classify(rec, opts)
		if reason != NotDropped {
			dropped = append(dropped, DroppedRow{Record: rec, Reason: reason})
			continue
		}
		items = append(items, item)
	}

	result := Aggregate(items)
	result.Regions = lo.Uniq(lo.Map(records, func(r entity.RawRecord, _ int) string {
		return r.Region
	}))
	sort.Strings(result.Regions)

	if len(records) > 0 {
		result.ClientName, result.AccountID = IdentifyClient(records[0].Hierarchy)
	}

	return result, dropped
}

// Items flattens the result back into line items, region by region in sorted order and
// family by family in report order.
func Items(result entity.EstimateResult) []entity.ClassifiedLineItem {
	var items []entity.ClassifiedLineItem
	for _, region := range result.Regions {
		bucket, ok := result.ServicesByRegion[region]
		if !ok {
			continue
		}
		for _, family := range entity.ReportFamilyOrder {
			items = append(items, bucket[family]...)
		}
	}
	return items
}
