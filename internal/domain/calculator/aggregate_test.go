package calculator

import (
	"testing"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(region string, family entity.ServiceFamily, mode entity.PaymentMode, cost string) entity.ClassifiedLineItem {
	return entity.ClassifiedLineItem{
		InstanceSpec: entity.DefaultInstanceSpec(),
		Region:       region,
		Family:       family,
		PaymentMode:  mode,
		Cost:         dec(cost),
	}
}

func TestAggregateGroupsByRegionAndFamily(t *testing.T) {
	first := item(saoPaulo, entity.FamilyCompute, entity.PaymentDeferred, "10")
	first.Type = "first"
	second := item(saoPaulo, entity.FamilyCompute, entity.PaymentUpfront, "20")
	second.Type = "second"

	result := Aggregate([]entity.ClassifiedLineItem{
		first,
		item(nVirginia, entity.FamilyCache, entity.PaymentDeferred, "5"),
		second,
		item(nVirginia, entity.FamilyUnclassified, entity.PaymentDeferred, "99"),
	})

	assert.Equal(t, []string{saoPaulo, nVirginia}, result.Regions)
	require.Len(t, result.ServicesByRegion, 2)

	compute := result.ServicesByRegion[saoPaulo][entity.FamilyCompute]
	require.Len(t, compute, 2)
	assert.Equal(t, "first", compute[0].Type)
	assert.Equal(t, "second", compute[1].Type)

	assert.Len(t, result.ServicesByRegion[nVirginia], 1, "only the cache bucket exists")
	_, hasUnclassified := result.ServicesByRegion[nVirginia][entity.FamilyUnclassified]
	assert.False(t, hasUnclassified)
	assert.Equal(t, 3, result.ItemCount())
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil)
	assert.Empty(t, result.Regions)
	assert.Empty(t, result.ServicesByRegion)
	assert.Equal(t, 0, result.ItemCount())
}

func TestBuildEstimate(t *testing.T) {
	records, err := Parse([]byte(portugueseExport))
	require.NoError(t, err)

	result, dropped := BuildEstimate(records, deferredPrefs)

	assert.Equal(t, "Cliente Alfa", result.ClientName)
	assert.Equal(t, "998877665544", result.AccountID)
	assert.Equal(t, []string{"América do Sul (São Paulo)", "Leste dos EUA (N. da Virgínia)"}, result.Regions,
		"regions of dropped rows are still recorded")

	require.Len(t, dropped, 1)
	assert.Equal(t, DropOnDemand, dropped[0].Reason)
	assert.Equal(t, "Amazon EC2", dropped[0].Record.Service)

	lambda := result.ServicesByRegion["América do Sul (São Paulo)"][entity.FamilyFunction]
	require.Len(t, lambda, 1)
	assertDecimal(t, "36", lambda[0].Cost)
	_, ok := result.ServicesByRegion["Leste dos EUA (N. da Virgínia)"]
	assert.False(t, ok)

	assert.Len(t, Items(result), 1)
}
