package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"sync/atomic"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/league-simulator/internal/platform/logging"
	"github.com/riskibarqy/league-simulator/internal/usecase"
)

type Handler struct {
	leagueService     *usecase.LeagueService
	seasonService     *usecase.SeasonService
	predictionService *usecase.PredictionService
	logger            *logging.Logger
	validator         *validator.Validate
	seed              int64
	calls             atomic.Int64
}

func NewHandler(
	leagueService *usecase.LeagueService,
	seasonService *usecase.SeasonService,
	predictionService *usecase.PredictionService,
	logger *logging.Logger,
	seed int64,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		leagueService:     leagueService,
		seasonService:     seasonService,
		predictionService: predictionService,
		logger:            logger,
		validator:         validator.New(),
		seed:              seed,
	}
}

// nextSeed derives a fresh seed per request so repeated calls do not
// replay the same draws while the base seed keeps runs reproducible.
func (h *Handler) nextSeed() int64 {
	return h.seed + h.calls.Add(1)*1_000_003
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.leagueService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.leagueService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.leagueService.ListTeamPlayers(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.leagueService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) GenerateSquads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateSquads")
	defer span.End()

	rng := rand.New(rand.NewSource(h.nextSeed()))
	generated, err := h.leagueService.GenerateSquads(ctx, rng)
	if err != nil {
		h.logger.ErrorContext(ctx, "generate squads failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]int{"squadsGenerated": generated})
}

func (h *Handler) StartSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSeason")
	defer span.End()

	if err := h.seasonService.Start(ctx); err != nil {
		h.logger.WarnContext(ctx, "start season failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, map[string]any{
		"seasonId": h.seasonService.SeasonID(),
		"state":    string(h.seasonService.State()),
	})
}

type advanceRequest struct {
	Gameweeks int `json:"gameweeks" validate:"omitempty,min=1,max=38"`
}

func (h *Handler) AdvanceGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdvanceGameweek")
	defer span.End()

	req := advanceRequest{Gameweeks: 1}
	if r.Body != nil {
		decoder := sonic.ConfigDefault.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
		if req.Gameweeks == 0 {
			req.Gameweeks = 1
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var snapshots []snapshotDTO
	for i := 0; i < req.Gameweeks; i++ {
		snapshot, err := h.seasonService.AdvanceGameweek(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "advance gameweek failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		snapshots = append(snapshots, snapshotToDTO(snapshot))
	}
	writeSuccess(ctx, w, http.StatusOK, snapshots)
}

func (h *Handler) RunSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSeason")
	defer span.End()

	if err := h.seasonService.RunSeason(ctx); err != nil {
		h.logger.WarnContext(ctx, "run season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := h.seasonService.Table()
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"seasonId": h.seasonService.SeasonID(),
		"state":    string(h.seasonService.State()),
		"table":    tableToDTO(rows),
	})
}

func (h *Handler) RerateTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RerateTeams")
	defer span.End()

	if err := h.seasonService.Rerate(ctx); err != nil {
		h.logger.WarnContext(ctx, "rerate teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teams, err := h.leagueService.ListTeams(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTable")
	defer span.End()

	rows := h.seasonService.Table()
	if len(rows) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: no season started", usecase.ErrInvalidSeasonState))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, tableToDTO(rows))
}

func (h *Handler) GetSeasonHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonHistory")
	defer span.End()

	seasonID, err := strconv.Atoi(r.PathValue("seasonID"))
	if err != nil || seasonID < 1 {
		writeError(ctx, w, fmt.Errorf("%w: season id must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	snapshots, err := h.seasonService.SeasonHistory(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season history failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]snapshotDTO, 0, len(snapshots))
	for _, s := range snapshots {
		items = append(items, snapshotToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTitleOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTitleOdds")
	defer span.End()

	teams := h.seasonService.Teams()
	if len(teams) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: no season started", usecase.ErrInvalidSeasonState))
		return
	}

	seed := h.nextSeed()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: seed must be an integer", usecase.ErrInvalidInput))
			return
		}
		seed = parsed
	}

	odds, err := h.predictionService.ChampionshipOdds(ctx, teams, h.seasonService.RemainingFixtures(), seed)
	if err != nil {
		h.logger.WarnContext(ctx, "title odds failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, odds)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
