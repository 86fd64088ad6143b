package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/rmarques/futstats/internal/usecase"
)

type warmCacheRequest struct {
	LeagueIDs  []int64 `json:"leagueIds" validate:"required,min=1,dive,gt=0"`
	Season     int     `json:"season" validate:"omitempty,gte=0"`
	MaxWorkers int     `json:"maxWorkers" validate:"omitempty,gte=0"`
}

func (h *Handler) RunWarmCacheJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmCacheJob")
	defer span.End()

	var req warmCacheRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmService.Warm(ctx, usecase.WarmInput{
		LeagueIDs:  req.LeagueIDs,
		Season:     req.Season,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "warm cache job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
