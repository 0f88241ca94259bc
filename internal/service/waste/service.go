package waste

import (
	"context"
	"fmt"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/logger"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service computes the GRI 306 waste metrics for one tenant-year. Every
// call recomputes from the stored logs; nothing is cached between calls.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

var hundred = decimal.NewFromInt(100)

func round3(d decimal.Decimal) float64 {
	return d.Round(3).InexactFloat64()
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// pct is 100*part/total, 0 when the total is zero.
func pct(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return round2(part.Div(total).Mul(hundred))
}

// yearTotals is the aggregate over one tenant-year of logs.
type yearTotals struct {
	total        decimal.Decimal
	hazardous    decimal.Decimal
	nonHazardous decimal.Decimal
	byTreatment  map[TreatmentCategory]decimal.Decimal
	count        int
}

func (t *yearTotals) bucket(cat TreatmentCategory) domain.TreatmentBucket {
	return domain.TreatmentBucket{
		Tonnes:     round3(t.byTreatment[cat]),
		Percentage: pct(t.byTreatment[cat], t.total),
	}
}

func (t *yearTotals) breakdown() domain.TreatmentBreakdown {
	return domain.TreatmentBreakdown{
		Recycling:    t.bucket(TreatmentRecycling),
		Landfill:     t.bucket(TreatmentLandfill),
		Incineration: t.bucket(TreatmentIncineration),
		Composting:   t.bucket(TreatmentComposting),
		Other:        t.bucket(TreatmentOther),
	}
}

func (s *Service) aggregate(ctx context.Context, logs []*domain.WasteLog) *yearTotals {
	totals := &yearTotals{
		byTreatment: make(map[TreatmentCategory]decimal.Decimal, 5),
		count:       len(logs),
	}

	for _, l := range logs {
		tonnes, known := ToTonnes(l.Quantity, l.Unit)
		if !known {
			logger.Warnf(ctx, "unknown unit %q on waste log %s, assuming tonnes", l.Unit, l.ID)
		}

		totals.total = totals.total.Add(tonnes)
		if IsHazardous(l.WasteClass) {
			totals.hazardous = totals.hazardous.Add(tonnes)
		} else {
			totals.nonHazardous = totals.nonHazardous.Add(tonnes)
		}

		cat := ClassifyTreatment(l.FinalTreatmentType)
		totals.byTreatment[cat] = totals.byTreatment[cat].Add(tonnes)
	}

	return totals
}

func (s *Service) fetchYear(ctx context.Context, companyID uuid.UUID, year domain.Year) ([]*domain.WasteLog, error) {
	logs, err := s.store.ListWasteLogs(ctx, store.ListWasteLogsOpts{CompanyID: companyID, Year: year})
	if err != nil {
		return nil, fmt.Errorf("store.ListWasteLogs: %w", err)
	}
	return logs, nil
}

// fetchCurrentAndPrior loads both years up front. A prior-year failure is
// logged and comes back as nil; the current year's failure aborts the call.
func (s *Service) fetchCurrentAndPrior(ctx context.Context, companyID uuid.UUID, year domain.Year) (current, prior []*domain.WasteLog, err error) {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var fetchErr error
		current, fetchErr = s.fetchYear(egCtx, companyID, year)
		return fetchErr
	})
	eg.Go(func() error {
		p, fetchErr := s.fetchYear(egCtx, companyID, year-1)
		if fetchErr != nil {
			logger.Warnf(egCtx, "prior year %d unavailable: %s", year-1, fetchErr.Error())
			return nil
		}
		prior = p
		return nil
	})

	if err = eg.Wait(); err != nil {
		return nil, nil, err
	}
	return current, prior, nil
}

// compareYears builds the year-over-year delta. A zero or missing baseline
// yields no comparison rather than a divide-by-zero.
func compareYears(previousYear domain.Year, current, previous float64, lowerIsBetter bool) *domain.YearComparison {
	if previous == 0 {
		return nil
	}

	change := decimal.NewFromFloat(current).Sub(decimal.NewFromFloat(previous))
	improving := change.IsPositive()
	if lowerIsBetter {
		improving = change.IsNegative()
	}

	return &domain.YearComparison{
		PreviousYear:     previousYear,
		PreviousValue:    previous,
		ChangeAbsolute:   round3(change),
		ChangePercentage: round2(change.Div(decimal.NewFromFloat(previous)).Mul(hundred)),
		Improving:        improving,
	}
}
