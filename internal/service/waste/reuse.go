package waste

import (
	"context"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/logger"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Substrings matched in SQL (ILIKE) to select reuse rows.
var reuseTreatmentFilter = []string{"reuso", "reutiliz"}

var reuseCategoryOrder = []string{
	ReusePackaging,
	ReusePallets,
	ReuseContainers,
	ReuseEquipmentParts,
	ReuseConstructionMaterials,
	ReuseOther,
}

// Reuse is a direct metric: higher is better.
func classifyReusePerformance(reusePct float64) string {
	switch {
	case reusePct >= 20:
		return "Excelente"
	case reusePct >= 10:
		return "Bom"
	case reusePct >= 5:
		return "Regular"
	default:
		return "Baixo"
	}
}

// Reuse derives the reuse share of generation and a destination-category
// breakdown of the reused volume.
func (s *Service) Reuse(ctx context.Context, companyID uuid.UUID, year domain.Year) (*domain.ReuseResult, error) {
	var current, currentReuse, prior, priorReuse []*domain.WasteLog

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var fetchErr error
		current, fetchErr = s.fetchYear(egCtx, companyID, year)
		return fetchErr
	})
	eg.Go(func() error {
		logs, fetchErr := s.store.ListWasteLogs(egCtx, store.ListWasteLogsOpts{
			CompanyID:      companyID,
			Year:           year,
			TreatmentILike: reuseTreatmentFilter,
		})
		if fetchErr != nil {
			return fetchErr
		}
		currentReuse = logs
		return nil
	})
	eg.Go(func() error {
		p, fetchErr := s.fetchYear(egCtx, companyID, year-1)
		if fetchErr != nil {
			logger.Warnf(egCtx, "prior year %d unavailable: %s", year-1, fetchErr.Error())
			return nil
		}
		pr, fetchErr := s.store.ListWasteLogs(egCtx, store.ListWasteLogsOpts{
			CompanyID:      companyID,
			Year:           year - 1,
			TreatmentILike: reuseTreatmentFilter,
		})
		if fetchErr != nil {
			logger.Warnf(egCtx, "prior year %d unavailable: %s", year-1, fetchErr.Error())
			return nil
		}
		prior, priorReuse = p, pr
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	cur := s.aggregate(ctx, current)

	reuseTotal := decimal.Decimal{}
	byCategory := make(map[string]decimal.Decimal, len(reuseCategoryOrder))
	for _, l := range currentReuse {
		tonnes, known := ToTonnes(l.Quantity, l.Unit)
		if !known {
			logger.Warnf(ctx, "unknown unit %q on waste log %s, assuming tonnes", l.Unit, l.ID)
		}
		reuseTotal = reuseTotal.Add(tonnes)
		cat := ClassifyReuseCategory(l.WasteDescription)
		byCategory[cat] = byCategory[cat].Add(tonnes)
	}

	reusePct := pct(reuseTotal, cur.total)

	categories := make([]domain.CategoryVolume, 0, len(reuseCategoryOrder))
	for _, cat := range reuseCategoryOrder {
		categories = append(categories, domain.CategoryVolume{
			Category:   cat,
			Tonnes:     round3(byCategory[cat]),
			Percentage: pct(byCategory[cat], reuseTotal),
		})
	}

	res := &domain.ReuseResult{
		Year:                      year,
		TotalGeneratedTonnes:      round3(cur.total),
		ReuseTonnes:               round3(reuseTotal),
		ReusePercentage:           reusePct,
		PerformanceClassification: classifyReusePerformance(reusePct),
		ByCategory:                categories,
	}

	prev := s.aggregate(ctx, prior)
	prevReuseTotal := decimal.Decimal{}
	for _, l := range priorReuse {
		tonnes, _ := ToTonnes(l.Quantity, l.Unit)
		prevReuseTotal = prevReuseTotal.Add(tonnes)
	}
	// Direct metric: improving means the reuse share increased, the
	// opposite polarity from the disposal comparison.
	res.Comparison = compareYears(year-1, reusePct, pct(prevReuseTotal, prev.total), false)

	return res, nil
}
