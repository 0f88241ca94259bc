package controller

import (
	"net/http"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

func (c *Controller) SyncLegislation(ctx echo.Context) error {
	indexURL := viper.GetString(constants.ViperKeyLegislationIndexURL)
	if indexURL == "" {
		return constants.NewCodedError(http.StatusInternalServerError, "legislation index url not configured")
	}

	items, err := c.legislation.SyncFromIndex(ctx.Request().Context(), indexURL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) ListLegislation(ctx echo.Context) error {
	opts := store.ListLegislationsOpts{}
	if sphere := ctx.QueryParams().Get("sphere"); sphere != "" {
		opts.Sphere = &sphere
	}
	if status := ctx.QueryParams().Get("status"); status != "" {
		opts.Status = &status
	}

	items, err := c.legislation.List(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}
