package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rmarques/futstats/internal/platform/logging"
	"github.com/rmarques/futstats/internal/usecase"
)

type Handler struct {
	fixtureService  *usecase.FixtureService
	teamService     *usecase.TeamService
	leagueService   *usecase.LeagueService
	standingService *usecase.StandingService
	scorerService   *usecase.ScorerService
	accountService  *usecase.AccountService
	warmService     *usecase.WarmService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	fixtureService *usecase.FixtureService,
	teamService *usecase.TeamService,
	leagueService *usecase.LeagueService,
	standingService *usecase.StandingService,
	scorerService *usecase.ScorerService,
	accountService *usecase.AccountService,
	warmService *usecase.WarmService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureService:  fixtureService,
		teamService:     teamService,
		leagueService:   leagueService,
		standingService: standingService,
		scorerService:   scorerService,
		accountService:  accountService,
		warmService:     warmService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID parses a numeric path segment such as {teamID}.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}

	return id, nil
}

// queryInt parses an optional integer query parameter, returning fallback
// when the parameter is absent or blank.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}

	return value, nil
}
