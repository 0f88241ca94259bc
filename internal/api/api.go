package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/api/controller"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/logger"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/auth"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/legislation"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/report"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/service/waste"
)

type APIService struct {
	router      *echo.Echo
	authService *auth.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicJSONSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(requestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.authService = auth.NewService(st)
	wasteService := waste.NewService(st)
	legislationService := legislation.NewService(st)
	reportService := report.NewService(wasteService, legislationService)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(wasteService, legislationService, reportService)

	wasteGroup := api.Group("/waste", svc.AuthMiddleware)
	wasteGroup.GET("/generation", cntrl.GetWasteGeneration)
	wasteGroup.GET("/disposal", cntrl.GetWasteDisposal)
	wasteGroup.GET("/reuse", cntrl.GetWasteReuse)
	wasteGroup.GET("/recycling-by-material", cntrl.GetRecyclingByMaterial)
	wasteGroup.GET("/report", cntrl.ExportWasteReport)

	legislationGroup := api.Group("/legislation", svc.AuthMiddleware)
	legislationGroup.POST("/sync", cntrl.SyncLegislation)
	legislationGroup.GET("/list", cntrl.ListLegislation)
	legislationGroup.GET("/report", cntrl.ExportLegislationReport)

	return svc, nil
}
