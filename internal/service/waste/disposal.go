package waste

import (
	"context"
	"sort"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Zero-Waste certification caps disposal at 10% of generation. This is
	// a different threshold from the 70% diversion floor in recycling.go.
	zeroWasteDisposalCeiling = 10.0

	topWasteTypesLimit = 10
)

// Fixed emission factors (kg CO2e per tonne) and unit costs (BRL per tonne).
var (
	landfillCO2Factor      = decimal.NewFromInt(500)
	incinerationCO2Factor  = decimal.NewFromInt(700)
	landfillCostFactor     = decimal.NewFromInt(200)
	incinerationCostFactor = decimal.NewFromInt(600)
)

// Disposal is an inverse metric: lower is better, and the band edges are
// inclusive on the upper end.
func classifyDisposalPerformance(disposalPct float64) string {
	switch {
	case disposalPct <= 10:
		return "Zero Waste"
	case disposalPct <= 25:
		return "Excelente"
	case disposalPct <= 40:
		return "Bom"
	case disposalPct <= 60:
		return "Regular"
	default:
		return "Crítico"
	}
}

type disposalAccumulator struct {
	description string
	landfill    decimal.Decimal
	incinerated decimal.Decimal
	hazardous   decimal.Decimal
}

func (a *disposalAccumulator) total() decimal.Decimal {
	return a.landfill.Add(a.incinerated)
}

// Disposal derives the landfill+incineration share of generation, the
// Zero-Waste gap, CO2/cost estimates and a top-10 per-waste-type breakdown.
func (s *Service) Disposal(ctx context.Context, companyID uuid.UUID, year domain.Year) (*domain.DisposalResult, error) {
	current, prior, err := s.fetchCurrentAndPrior(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	cur := s.aggregate(ctx, current)
	landfill := cur.byTreatment[TreatmentLandfill]
	incinerated := cur.byTreatment[TreatmentIncineration]

	landfillPct := pct(landfill, cur.total)
	incineratedPct := pct(incinerated, cur.total)
	// Sum of the two rounded shares, not a fresh ratio over the raw tonnes.
	disposalPct := round2(decimal.NewFromFloat(landfillPct).Add(decimal.NewFromFloat(incineratedPct)))

	topTypes, hazardousDisposal := s.topDisposalTypes(current)

	res := &domain.DisposalResult{
		Year:                      year,
		TotalGeneratedTonnes:      round3(cur.total),
		LandfillTonnes:            round3(landfill),
		IncinerationTonnes:        round3(incinerated),
		DisposalTonnes:            round3(landfill.Add(incinerated)),
		LandfillPercentage:        landfillPct,
		IncinerationPercentage:    incineratedPct,
		DisposalPercentage:        disposalPct,
		PerformanceClassification: classifyDisposalPerformance(disposalPct),
		ZeroWaste: domain.ZeroWasteCompliance{
			TargetPercentage: zeroWasteDisposalCeiling,
			GapToTarget:      round2(decimal.NewFromFloat(disposalPct).Sub(decimal.NewFromFloat(zeroWasteDisposalCeiling))),
			IsCompliant:      disposalPct <= zeroWasteDisposalCeiling,
		},
		TopWasteTypes:           topTypes,
		HazardousDisposalTonnes: hazardousDisposal,
		EnvironmentalImpact: domain.EnvironmentalImpact{
			LandfillCO2Kg:     round2(landfill.Mul(landfillCO2Factor)),
			IncinerationCO2Kg: round2(incinerated.Mul(incinerationCO2Factor)),
			TotalCO2Kg:        round2(landfill.Mul(landfillCO2Factor).Add(incinerated.Mul(incinerationCO2Factor))),
		},
		CostEstimate: domain.DisposalCostEstimate{
			LandfillCostBRL:     round2(landfill.Mul(landfillCostFactor)),
			IncinerationCostBRL: round2(incinerated.Mul(incinerationCostFactor)),
			TotalCostBRL:        round2(landfill.Mul(landfillCostFactor).Add(incinerated.Mul(incinerationCostFactor))),
		},
	}

	prev := s.aggregate(ctx, prior)
	prevDisposalPct := round2(decimal.NewFromFloat(pct(prev.byTreatment[TreatmentLandfill], prev.total)).
		Add(decimal.NewFromFloat(pct(prev.byTreatment[TreatmentIncineration], prev.total))))
	res.Comparison = compareYears(year-1, disposalPct, prevDisposalPct, true)

	return res, nil
}

// topDisposalTypes accumulates landfill/incineration tonnes per
// waste_description, sorted descending and truncated to the top 10. The
// hazardous-disposal total is summed over the truncated list only, so a
// hazardous type ranking 11th or lower is not counted.
func (s *Service) topDisposalTypes(logs []*domain.WasteLog) ([]domain.WasteTypeDisposal, float64) {
	byDescription := make(map[string]*disposalAccumulator)

	for _, l := range logs {
		cat := ClassifyTreatment(l.FinalTreatmentType)
		if cat != TreatmentLandfill && cat != TreatmentIncineration {
			continue
		}

		// aggregate already warned about unknown units for these rows
		tonnes, _ := ToTonnes(l.Quantity, l.Unit)

		acc, ok := byDescription[l.WasteDescription]
		if !ok {
			acc = &disposalAccumulator{description: l.WasteDescription}
			byDescription[l.WasteDescription] = acc
		}

		if cat == TreatmentLandfill {
			acc.landfill = acc.landfill.Add(tonnes)
		} else {
			acc.incinerated = acc.incinerated.Add(tonnes)
		}
		if IsHazardous(l.WasteClass) {
			acc.hazardous = acc.hazardous.Add(tonnes)
		}
	}

	accs := make([]*disposalAccumulator, 0, len(byDescription))
	for _, acc := range byDescription {
		accs = append(accs, acc)
	}
	sort.Slice(accs, func(i, j int) bool {
		if !accs[i].total().Equal(accs[j].total()) {
			return accs[i].total().GreaterThan(accs[j].total())
		}
		return accs[i].description < accs[j].description
	})
	if len(accs) > topWasteTypesLimit {
		accs = accs[:topWasteTypesLimit]
	}

	types := make([]domain.WasteTypeDisposal, 0, len(accs))
	hazardous := decimal.Decimal{}
	for _, acc := range accs {
		types = append(types, domain.WasteTypeDisposal{
			WasteDescription:   acc.description,
			LandfillTonnes:     round3(acc.landfill),
			IncinerationTonnes: round3(acc.incinerated),
			TotalTonnes:        round3(acc.total()),
			Hazardous:          acc.hazardous.IsPositive(),
		})
		hazardous = hazardous.Add(acc.hazardous)
	}

	return types, round3(hazardous)
}
