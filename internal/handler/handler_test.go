package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/takasapp/takas-admin-api/internal/dataset"
	"github.com/takasapp/takas-admin-api/internal/store"
)

var handlerTestNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newHandlerStore(t *testing.T) *store.Store {
	t.Helper()

	opts := dataset.Options{
		Seed:          42,
		Users:         20,
		Products:      100,
		Offers:        30,
		Threads:       15,
		Messages:      100,
		Notifications: 40,
		Reports:       10,
		Now:           handlerTestNow,
	}

	st, err := store.New(opts, zerolog.New(io.Discard), store.WithClock(func() time.Time { return handlerTestNow }))
	require.NoError(t, err)
	return st
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
