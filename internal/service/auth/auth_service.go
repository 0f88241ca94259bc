package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/utils"
	"github.com/google/uuid"
)

// Service resolves a session token to the tenant every aggregation is
// scoped to. Calculators receive the company id explicitly; this is the
// only place the session is touched.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ResolveSession parses the auth token and returns (userID, companyID).
func (s *Service) ResolveSession(ctx context.Context, token string) (uuid.UUID, uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, uuid.Nil, constants.ErrMissingAuthToken
	}

	wrapper, err := utils.ParseAuthToken(token)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	companyID, err := s.ResolveCompanyID(ctx, wrapper.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return wrapper.UserID, companyID, nil
}

// ResolveCompanyID looks up the user's profile and returns its tenant.
func (s *Service) ResolveCompanyID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return uuid.Nil, constants.ErrTenantNotFound
		}
		return uuid.Nil, fmt.Errorf("store.GetProfileByUserID: %w", err)
	}

	if profile.CompanyID == nil {
		return uuid.Nil, constants.ErrTenantNotFound
	}

	return *profile.CompanyID, nil
}
