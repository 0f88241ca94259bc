package store

import (
	"context"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/domain/dto"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store/xpgx"
	"github.com/google/uuid"
)

type Pool = xpgx.Pool

type Store interface {
	ListWasteLogs(ctx context.Context, opts ListWasteLogsOpts) ([]*domain.WasteLog, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertLegislation(ctx context.Context, item *dto.LegislationDto) (*domain.Legislation, error)
	ListLegislations(ctx context.Context, opts ListLegislationsOpts) ([]*domain.Legislation, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
