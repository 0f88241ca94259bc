package waste

import (
	"context"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/google/uuid"
)

// TotalGeneration sums one tenant-year of waste logs into total,
// hazardous/non-hazardous and per-treatment buckets, with an optional
// year-over-year delta on the total.
func (s *Service) TotalGeneration(ctx context.Context, companyID uuid.UUID, year domain.Year) (*domain.GenerationResult, error) {
	current, prior, err := s.fetchCurrentAndPrior(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	cur := s.aggregate(ctx, current)

	res := &domain.GenerationResult{
		Year:                 year,
		TotalGeneratedTonnes: round3(cur.total),
		HazardousTonnes:      round3(cur.hazardous),
		NonHazardousTonnes:   round3(cur.nonHazardous),
		HazardousPercentage:  pct(cur.hazardous, cur.total),
		ByTreatment:          cur.breakdown(),
		RecordCount:          cur.count,
	}

	prev := s.aggregate(ctx, prior)
	res.Comparison = compareYears(year-1, res.TotalGeneratedTonnes, round3(prev.total), true)

	return res, nil
}
