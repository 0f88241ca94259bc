package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store/xpgx"
	"github.com/google/uuid"
)

var profileColumns = []string{"id", "company_id", "full_name", "created_at", "updated_at"}

func (s *store) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := builder().Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"id": userID})

	selected, err := xpgx.Get[domain.Profile](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
