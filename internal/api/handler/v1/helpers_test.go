package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/eventpass-app/eventpass-api/internal/api/middleware"
	"github.com/eventpass-app/eventpass-api/internal/domain"
)

type fakeUserService struct {
	user domain.AdminUser
	err  error
}

func (f *fakeUserService) GetUser(_ context.Context, _ uint) (domain.AdminUser, error) {
	return f.user, f.err
}

func validUserService() *fakeUserService {
	return &fakeUserService{user: domain.AdminUser{ID: 1, Email: "organizer@example.com"}}
}

type fakeParticipantService struct {
	registerFn  func(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	listFn      func(ctx context.Context, eventID uint) ([]domain.Participant, error)
	getByCodeFn func(ctx context.Context, code string) (domain.Participant, error)
	checkInFn   func(ctx context.Context, qrToken string) (domain.Participant, bool, error)
	deleteFn    func(ctx context.Context, id uint) error

	calls int
}

func (f *fakeParticipantService) Register(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	f.calls++
	return f.registerFn(ctx, participant)
}

func (f *fakeParticipantService) ListByEvent(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	f.calls++
	return f.listFn(ctx, eventID)
}

func (f *fakeParticipantService) GetByEntryCode(ctx context.Context, code string) (domain.Participant, error) {
	f.calls++
	return f.getByCodeFn(ctx, code)
}

func (f *fakeParticipantService) CheckIn(ctx context.Context, qrToken string) (domain.Participant, bool, error) {
	f.calls++
	return f.checkInFn(ctx, qrToken)
}

func (f *fakeParticipantService) Delete(ctx context.Context, id uint) error {
	f.calls++
	return f.deleteFn(ctx, id)
}

type fakeLotteryService struct {
	drawFn func(ctx context.Context, participantIDs []uint, winnerCount int, removeWinners bool) (domain.DrawResult, error)
	calls  int
}

func (f *fakeLotteryService) Draw(ctx context.Context, participantIDs []uint, winnerCount int, removeWinners bool) (domain.DrawResult, error) {
	f.calls++
	return f.drawFn(ctx, participantIDs, winnerCount, removeWinners)
}

// newTestRouter returns a gin engine with the admin identity already stored on
// the context, standing in for the JWT middleware.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, uint(1))
		ctx.Next()
	})

	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

// envelope mirrors the uniform {"data": ..., "error": ...} response body.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))

	return env
}
