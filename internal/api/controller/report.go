package controller

import (
	"fmt"
	"net/http"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/labstack/echo/v4"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (c *Controller) ExportWasteReport(ctx echo.Context) error {
	year, err := bindYear(ctx)
	if err != nil {
		return err
	}
	company, err := companyID(ctx)
	if err != nil {
		return err
	}

	data, filename, err := c.report.WasteWorkbook(ctx.Request().Context(), company, year)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, xlsxMIME, data)
}

func (c *Controller) ExportLegislationReport(ctx echo.Context) error {
	opts := store.ListLegislationsOpts{}
	if sphere := ctx.QueryParams().Get("sphere"); sphere != "" {
		opts.Sphere = &sphere
	}
	if status := ctx.QueryParams().Get("status"); status != "" {
		opts.Status = &status
	}

	data, filename, err := c.report.LegislationWorkbook(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, xlsxMIME, data)
}
