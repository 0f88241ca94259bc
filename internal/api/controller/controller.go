package controller

import (
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/legislation"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/report"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/waste"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	waste       *waste.Service
	legislation *legislation.Service
	report      *report.Service
}

func NewController(
	wasteService *waste.Service,
	legislationService *legislation.Service,
	reportService *report.Service,
) *Controller {
	return &Controller{
		waste:       wasteService,
		legislation: legislationService,
		report:      reportService,
	}
}

func companyID(ctx echo.Context) (uuid.UUID, error) {
	id, ok := ctx.Get(constants.CtxKeyCompanyID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, constants.ErrUnauthorized
	}
	return id, nil
}

type yearQuery struct {
	Year int `query:"year" validate:"required,gte=2000,lte=2100"`
}

func bindYear(ctx echo.Context) (int, error) {
	var q yearQuery
	if err := ctx.Bind(&q); err != nil {
		return 0, err
	}
	if err := ctx.Validate(&q); err != nil {
		return 0, err
	}
	return q.Year, nil
}
