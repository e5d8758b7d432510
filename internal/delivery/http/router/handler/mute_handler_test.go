package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zonewatch/internal/delivery/http/validator"
	"zonewatch/internal/domain/entity"
	"zonewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// fakeMuteUsecase records mutations and serves canned state.
type fakeMuteUsecase struct {
	settings   entity.MuteSettings
	minutes    *int
	mutedFor   time.Duration
	alertMutes map[string]bool
}

func (f *fakeMuteUsecase) IsSuppressed(context.Context, string) (bool, usecase.SuppressReason) {
	return false, usecase.SuppressNone
}

func (f *fakeMuteUsecase) SetMuted(_ context.Context, muted bool) error {
	f.settings.SetMuted(muted)

	return nil
}

func (f *fakeMuteUsecase) MuteFor(_ context.Context, d time.Duration) error {
	f.mutedFor = d

	return nil
}

func (f *fakeMuteUsecase) SetAlertMuted(_ context.Context, alertPointID string, muted bool) error {
	if f.alertMutes == nil {
		f.alertMutes = map[string]bool{}
	}
	f.alertMutes[alertPointID] = muted

	return nil
}

func (f *fakeMuteUsecase) MinutesRemaining(context.Context) (*int, error) {
	return f.minutes, nil
}

func (f *fakeMuteUsecase) Settings(context.Context) (*entity.MuteSettings, error) {
	settings := f.settings

	return &settings, nil
}

func newMuteHandler(fake *fakeMuteUsecase) *MuteHandler {
	return NewMuteHandler(MuteHandlerParams{MuteUC: fake, Logger: newTestLogger()})
}

func TestMuteHandler_GetMute(t *testing.T) {
	minutes := 12
	fake := &fakeMuteUsecase{minutes: &minutes}
	fake.settings.MutedAlertIDs = []string{"zone-1"}

	c, rec := newEchoContext(http.MethodGet, "/mute", "")
	require.NoError(t, newMuteHandler(fake).GetMute(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"minutes_remaining":12`)
	assert.Contains(t, rec.Body.String(), `"zone-1"`)
}

func TestMuteHandler_SetMute(t *testing.T) {
	fake := &fakeMuteUsecase{}

	c, rec := newEchoContext(http.MethodPut, "/mute", `{"muted":true}`)
	require.NoError(t, newMuteHandler(fake).SetMute(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fake.settings.IsMuted)
}

func TestMuteHandler_SetTimedMute(t *testing.T) {
	fake := &fakeMuteUsecase{}

	c, rec := newEchoContext(http.MethodPut, "/mute/timed", `{"minutes":30}`)
	require.NoError(t, newMuteHandler(fake).SetTimedMute(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30*time.Minute, fake.mutedFor)
}

func TestMuteHandler_SetTimedMuteRejectsNonPositiveMinutes(t *testing.T) {
	fake := &fakeMuteUsecase{}

	c, rec := newEchoContext(http.MethodPut, "/mute/timed", `{"minutes":0}`)
	require.NoError(t, newMuteHandler(fake).SetTimedMute(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.mutedFor)
}

func TestMuteHandler_SetAlertMute(t *testing.T) {
	fake := &fakeMuteUsecase{}

	c, rec := newEchoContext(http.MethodPut, "/mute/alerts/zone-1", `{"muted":true}`)
	c.SetParamNames("id")
	c.SetParamValues("zone-1")
	require.NoError(t, newMuteHandler(fake).SetAlertMute(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fake.alertMutes["zone-1"])
}
