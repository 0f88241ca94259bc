package waste

import (
	"context"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// zeroWasteDiversionFloor is the minimum recycling+composting share for the
// Zero-Waste certification progress score. Independent of the 10% disposal
// ceiling in disposal.go; the two definitions must not be conflated.
const zeroWasteDiversionFloor = 70.0

var materialCategoryOrder = []string{
	MaterialPaperCardboard,
	MaterialPlastic,
	MaterialMetal,
	MaterialGlass,
	MaterialOrganic,
	MaterialWood,
	MaterialElectronic,
	MaterialTextile,
	MaterialOther,
}

func classifyRecyclingMaturity(recyclingPct float64) string {
	switch {
	case recyclingPct >= 70:
		return "excellent"
	case recyclingPct >= 50:
		return "good"
	case recyclingPct >= 30:
		return "regular"
	default:
		return "low"
	}
}

// RecyclingByMaterial classifies the recycled and composted volume into
// material categories and scores Zero-Waste diversion progress.
func (s *Service) RecyclingByMaterial(ctx context.Context, companyID uuid.UUID, year domain.Year) (*domain.RecyclingResult, error) {
	current, err := s.fetchYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	cur := s.aggregate(ctx, current)
	recycled := cur.byTreatment[TreatmentRecycling]
	composted := cur.byTreatment[TreatmentComposting]
	totalRecycled := recycled.Add(composted)

	// Sum of the two bucket percentages, not recomputed from tonnes, so the
	// figure stays consistent with the generation breakdown.
	recyclingPct := round2(decimal.NewFromFloat(pct(recycled, cur.total)).
		Add(decimal.NewFromFloat(pct(composted, cur.total))))

	byMaterial := make(map[string]decimal.Decimal, len(materialCategoryOrder))
	for _, l := range current {
		cat := ClassifyTreatment(l.FinalTreatmentType)
		if cat != TreatmentRecycling && cat != TreatmentComposting {
			continue
		}
		tonnes, _ := ToTonnes(l.Quantity, l.Unit)
		material := ClassifyMaterial(l.WasteDescription)
		byMaterial[material] = byMaterial[material].Add(tonnes)
	}

	materials := make([]domain.CategoryVolume, 0, len(materialCategoryOrder))
	for _, material := range materialCategoryOrder {
		materials = append(materials, domain.CategoryVolume{
			Category:   material,
			Tonnes:     round3(byMaterial[material]),
			Percentage: pct(byMaterial[material], totalRecycled),
		})
	}

	progress := decimal.NewFromFloat(recyclingPct).
		Div(decimal.NewFromFloat(zeroWasteDiversionFloor)).
		Mul(hundred)
	if progress.GreaterThan(hundred) {
		progress = hundred
	}

	return &domain.RecyclingResult{
		Year:                 year,
		TotalGeneratedTonnes: round3(cur.total),
		TotalRecycledTonnes:  round3(totalRecycled),
		RecyclingPercentage:  recyclingPct,
		ByMaterial:           materials,
		MaturityLevel:        classifyRecyclingMaturity(recyclingPct),
		ZeroWasteProgress:    round2(progress),
	}, nil
}
