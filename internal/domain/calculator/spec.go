package calculator

import (
	"strconv"

	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
)

var (
	ec2InstancePattern  = bilingual(`Instância do EC2 avançada \(([^)]+)\)`, `Advance EC2 instance \(([^)]+)\)`)
	ec2QuantityPattern  = bilingual(`Número de instâncias: (\d+)`, `Number of instances: (\d+)`)
	pricingStrategy     = bilingual(`Estratégia de preços \(([^)]+)\)`, `Pricing strategy \(([^)]+)\)`)
	operatingSystem     = bilingual(`Sistema operacional \(([^)]+)\)`, `Operating system \(([^)]+)\)`)
	instanceTypePattern = bilingual(`Tipo de instância \(([^)]+)\)`, `Instance type \(([^)]+)\)`)
	nodesPattern        = bilingual(`Nós \((\d+)\)`, `Nodes \((\d+)\)`)
)

var (
	availabilityRule = markerRule{
		choices:  []markerChoice{{markers: []string{"Multi", "multi"}, value: "Multi AZ"}},
		fallback: "Single AZ",
	}
	termRule = markerRule{
		choices:  []markerChoice{{markers: []string{"3 year", "3-year"}, value: "3 anos"}},
		fallback: "1 ano",
		fold:     true,
	}
	rdsPurchaseRule = markerRule{
		choices: []markerChoice{
			{markers: []string{"OnDemand"}, value: "On Demand"},
			{markers: []string{"No Upfront"}, value: "No Upfront"},
			{markers: []string{"All Upfront"}, value: "All Upfront"},
		},
		fallback: "Reserved Instance",
	}
	cachePurchaseRule = markerRule{
		choices: []markerChoice{
			{markers: []string{"OnDemand"}, value: "On Demand"},
			{markers: []string{"Heavy Utilization"}, value: "Heavy Utilization"},
			{markers: []string{"No Upfront"}, value: "No Upfront"},
			{markers: []string{"All Upfront"}, value: "All Upfront"},
		},
		fallback: "Reserved Instance",
	}
	cacheEngineRule = markerRule{
		choices: []markerChoice{
			{markers: []string{"Valkey"}, value: "Valkey"},
			{markers: []string{"Memcached"}, value: "Memcached"},
		},
		fallback: "Redis",
	}
	architectureRule = markerRule{
		choices:  []markerChoice{{markers: []string{"ARM"}, value: "ARM"}},
		fallback: "x86",
	}
	containerOSRule = markerRule{
		choices:  []markerChoice{{markers: []string{"Windows"}, value: "Windows"}},
		fallback: "Linux",
	}
)

// cacheExcludedType is never picked as the node type of a cache cluster.
const cacheExcludedType = "r6gd.12xlarge"

// specRule produces one auxiliary descriptor from the configuration text and service label.
type specRule func(config, service string) string

func patternSpec(p textPattern, fallback string) specRule {
	return func(config, _ string) string {
		if v, ok := p.find(config); ok {
			return v
		}
		return fallback
	}
}

func markerSpec(r markerRule) specRule {
	return func(config, _ string) string {
		return r.resolve(config)
	}
}

func serviceLabelSpec() specRule {
	return func(_, service string) string {
		return service
	}
}

// familyExtractor describes how to read an InstanceSpec for one service family.
type familyExtractor struct {
	family   entity.ServiceFamily
	markers  []string
	typeOf   *textPattern
	quantity *textPattern
	// pairNodes pairs every type with the node count at the same position and keeps the
	// first usable pair instead of taking the first type and first count independently.
	pairNodes bool
	specs     []specRule
}

// Extractors in dispatch order; the first whose marker is in the service label wins.
var specExtractors = []familyExtractor{
	{
		family:   entity.FamilyCompute,
		markers:  []string{"EC2"},
		typeOf:   &ec2InstancePattern,
		quantity: &ec2QuantityPattern,
		specs: []specRule{
			patternSpec(pricingStrategy, "N/A"),
			patternSpec(operatingSystem, "N/A"),
		},
	},
	{
		family:   entity.FamilyRelationalDB,
		markers:  []string{"RDS", "Aurora"},
		typeOf:   &instanceTypePattern,
		quantity: &nodesPattern,
		specs: []specRule{
			markerSpec(availabilityRule),
			markerSpec(rdsPurchaseRule),
			markerSpec(termRule),
			serviceLabelSpec(),
		},
	},
	{
		family:    entity.FamilyCache,
		markers:   []string{"ElastiCache"},
		typeOf:    &instanceTypePattern,
		quantity:  &nodesPattern,
		pairNodes: true,
		specs: []specRule{
			markerSpec(cachePurchaseRule),
			markerSpec(termRule),
			markerSpec(cacheEngineRule),
		},
	},
	{
		family:  entity.FamilyContainer,
		markers: []string{"AWS Fargate", "Fargate"},
		specs: []specRule{
			markerSpec(architectureRule),
			markerSpec(containerOSRule),
		},
	},
}

// ExtractSpec derives the instance type, quantity and auxiliary specs of a row. Labels
// outside the known families yield the default spec.
func ExtractSpec(config, service string) entity.InstanceSpec {
	spec := entity.DefaultInstanceSpec()

	for _, ex := range specExtractors {
		if !containsAny(service, ex.markers) {
			continue
		}

		if ex.pairNodes {
			ex.pairTypeAndNodes(config, &spec)
		} else {
			if ex.typeOf != nil {
				if v, ok := ex.typeOf.find(config); ok {
					spec.Type = v
				}
			}
			if ex.quantity != nil {
				if v, ok := ex.quantity.find(config); ok {
					if n, err := strconv.Atoi(v); err == nil && n > 0 {
						spec.Quantity = n
					}
				}
			}
		}

		specs := make([]string, 0, len(ex.specs))
		for _, rule := range ex.specs {
			specs = append(specs, rule(config, service))
		}
		spec.Specs = specs
		return spec
	}

	return spec
}

func (ex familyExtractor) pairTypeAndNodes(config string, spec *entity.InstanceSpec) {
	typesFound := ex.typeOf.findAll(config)
	counts := ex.quantity.findAll(config)

	for i, instanceType := range typesFound {
		if i >= len(counts) {
			break
		}
		nodes, err := strconv.Atoi(counts[i])
		if err != nil {
			continue
		}
		if nodes > 0 && !containsAny(instanceType, []string{cacheExcludedType}) {
			spec.Type = instanceType
			spec.Quantity = nodes
			return
		}
	}
}
