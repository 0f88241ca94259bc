package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	assert.ErrorIs(t, wrapErr(pgx.ErrNoRows), constants.ErrDBNotFound)
	assert.ErrorIs(t, wrapErr(fmt.Errorf("query: %w", pgx.ErrNoRows)), constants.ErrDBNotFound)

	sentinel := errors.New("boom")
	assert.Equal(t, sentinel, wrapErr(sentinel))
}
