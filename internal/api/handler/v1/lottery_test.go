package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/service"
)

func TestLotteryHandler_HandleDraw(t *testing.T) {
	t.Run("draws winners", func(t *testing.T) {
		svc := &fakeLotteryService{
			drawFn: func(_ context.Context, participantIDs []uint, winnerCount int, removeWinners bool) (domain.DrawResult, error) {
				require.ElementsMatch(t, []uint{1, 2, 3}, participantIDs)
				require.Equal(t, 2, winnerCount)
				require.True(t, removeWinners)
				return domain.DrawResult{
					Winners:     []domain.Participant{{ID: 1}, {ID: 3}},
					WinnerCount: 2,
					Removed:     true,
				}, nil
			},
		}
		router := newTestRouter()
		router.POST("/admin/lottery", NewLotteryHandler(svc, validUserService()).HandleDraw)

		recorder := performJSON(t, router, http.MethodPost, "/admin/lottery", map[string]interface{}{
			"participantIds": []uint{1, 2, 3},
			"winnerCount":    2,
			"removeWinners":  true,
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		env := decodeEnvelope(t, recorder)
		require.Nil(t, env.Error)

		var result domain.DrawResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Equal(t, 2, result.WinnerCount)
		assert.True(t, result.Removed)
	})

	t.Run("winner count above the pool never reaches the service", func(t *testing.T) {
		svc := &fakeLotteryService{}
		router := newTestRouter()
		router.POST("/admin/lottery", NewLotteryHandler(svc, validUserService()).HandleDraw)

		recorder := performJSON(t, router, http.MethodPost, "/admin/lottery", map[string]interface{}{
			"participantIds": []uint{1, 2},
			"winnerCount":    5,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Zero(t, svc.calls)
	})

	t.Run("empty pool never reaches the service", func(t *testing.T) {
		svc := &fakeLotteryService{}
		router := newTestRouter()
		router.POST("/admin/lottery", NewLotteryHandler(svc, validUserService()).HandleDraw)

		recorder := performJSON(t, router, http.MethodPost, "/admin/lottery", map[string]interface{}{
			"participantIds": []uint{},
			"winnerCount":    1,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Zero(t, svc.calls)
	})

	t.Run("service-level validation maps to 400", func(t *testing.T) {
		svc := &fakeLotteryService{
			drawFn: func(_ context.Context, _ []uint, _ int, _ bool) (domain.DrawResult, error) {
				return domain.DrawResult{}, service.ErrInvalidWinnerCount
			},
		}
		router := newTestRouter()
		router.POST("/admin/lottery", NewLotteryHandler(svc, validUserService()).HandleDraw)

		recorder := performJSON(t, router, http.MethodPost, "/admin/lottery", map[string]interface{}{
			"participantIds": []uint{1, 2, 3},
			"winnerCount":    2,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
