package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/logger"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store/xpgx"
	"github.com/google/uuid"
)

var wasteLogColumns = []string{
	"id", "company_id", "quantity", "unit", "waste_description",
	"waste_class", "final_treatment_type", "collection_date", "mtr_number", "created_at",
}

type ListWasteLogsOpts struct {
	CompanyID uuid.UUID
	Year      domain.Year

	// TreatmentILike, when set, restricts rows to those whose
	// final_treatment_type matches any of the substrings (OR of ILIKE).
	TreatmentILike []string
}

func (s *store) ListWasteLogs(ctx context.Context, opts ListWasteLogsOpts) ([]*domain.WasteLog, error) {
	from := time.Date(opts.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(opts.Year, time.December, 31, 0, 0, 0, 0, time.UTC)

	query := builder().Select(wasteLogColumns...).
		From(tableWasteLogs).
		Where(sq.Eq{"company_id": opts.CompanyID}).
		Where(sq.GtOrEq{"collection_date": from}).
		Where(sq.LtOrEq{"collection_date": to}).
		OrderBy("collection_date")

	if len(opts.TreatmentILike) > 0 {
		or := sq.Or{}
		for _, substr := range opts.TreatmentILike {
			or = append(or, sq.ILike{"final_treatment_type": "%" + substr + "%"})
		}
		query = query.Where(or)
	}

	selected, err := xpgx.Select[domain.WasteLog](ctx, s.pool, query)
	if err != nil {
		logger.Errorf(ctx, "ListWasteLogs: %s", err.Error())
		return nil, fmt.Errorf("xpgx.Select: %w", wrapErr(err))
	}

	return selected, nil
}
