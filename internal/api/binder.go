package api

import (
	"net/http"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// Binder is the default echo binder with bind failures mapped to 400s.
// JSON bodies go through the sonic serializer below.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.fallback.Bind(i, ctx); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type sonicJSONSerializer struct{}

func (sonicJSONSerializer) Serialize(ctx echo.Context, i interface{}, _ string) error {
	return sonic.ConfigDefault.NewEncoder(ctx.Response()).Encode(i)
}

func (sonicJSONSerializer) Deserialize(ctx echo.Context, i interface{}) error {
	return sonic.ConfigDefault.NewDecoder(ctx.Request().Body).Decode(i)
}
