package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetWasteGeneration(ctx echo.Context) error {
	year, err := bindYear(ctx)
	if err != nil {
		return err
	}
	company, err := companyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.waste.TotalGeneration(ctx.Request().Context(), company, year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetWasteDisposal(ctx echo.Context) error {
	year, err := bindYear(ctx)
	if err != nil {
		return err
	}
	company, err := companyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.waste.Disposal(ctx.Request().Context(), company, year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetWasteReuse(ctx echo.Context) error {
	year, err := bindYear(ctx)
	if err != nil {
		return err
	}
	company, err := companyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.waste.Reuse(ctx.Request().Context(), company, year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetRecyclingByMaterial(ctx echo.Context) error {
	year, err := bindYear(ctx)
	if err != nil {
		return err
	}
	company, err := companyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.waste.RecyclingByMaterial(ctx.Request().Context(), company, year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}
