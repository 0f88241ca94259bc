package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain/dto"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store/xpgx"
	"github.com/bytedance/sonic"
)

var legislationColumns = []string{
	"id", "number", "title", "sphere", "status",
	"published_at", "source_url", "requirements", "created_at", "updated_at",
}

type ListLegislationsOpts struct {
	Sphere *string
	Status *string
}

func (s *store) UpsertLegislation(ctx context.Context, item *dto.LegislationDto) (*domain.Legislation, error) {
	requirementsJSON, err := sonic.Marshal(item.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	query := builder().Insert(tableLegislations).
		Columns("number", "title", "sphere", "status", "published_at", "source_url", "requirements").
		Values(item.Number, item.Title, item.Sphere, item.Status, item.PublishedAt, item.SourceURL, requirementsJSON).
		Suffix(`
on conflict (number)
do update
set
	title = excluded.title,
	sphere = excluded.sphere,
	status = excluded.status,
	published_at = excluded.published_at,
	source_url = excluded.source_url,
	requirements = excluded.requirements,
	updated_at = now()`)

	if _, err = s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(legislationColumns...).
		From(tableLegislations).
		Where(sq.Eq{"number": item.Number})

	selected, err := xpgx.Get[domain.Legislation](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListLegislations(ctx context.Context, opts ListLegislationsOpts) ([]*domain.Legislation, error) {
	query := builder().Select(legislationColumns...).
		From(tableLegislations).
		OrderBy("published_at desc nulls last, number")

	if opts.Sphere != nil {
		query = query.Where(sq.Eq{"sphere": *opts.Sphere})
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}

	selected, err := xpgx.Select[domain.Legislation](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
