package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "coded error", err: constants.ErrTenantNotFound, wantCode: http.StatusNotFound},
		{name: "wrapped coded error", err: fmt.Errorf("auth: %w", constants.ErrUnauthorized), wantCode: http.StatusUnauthorized},
		{name: "plain error", err: fmt.Errorf("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.JSONSerializer = sonicJSONSerializer{}
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			httpErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.err.Error())
		})
	}
}
