package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/league-simulator/internal/domain/team"
	"github.com/riskibarqy/league-simulator/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-simulator/internal/platform/id"
	"github.com/riskibarqy/league-simulator/internal/platform/logging"
	"github.com/riskibarqy/league-simulator/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teams := make([]team.Team, 0, 4)
	for i := 0; i < 4; i++ {
		teams = append(teams, team.Team{
			ID:      fmt.Sprintf("team-%02d", i),
			Name:    fmt.Sprintf("Team %02d", i),
			Offense: 50 + float64(i)*5,
			Defense: 55 + float64(i)*4,
		})
	}

	teamRepo := memory.NewTeamRepository(teams)
	playerRepo := memory.NewPlayerRepository(nil)
	fixtureRepo := memory.NewFixtureRepository()
	historyRepo := memory.NewHistoryRepository()

	logger := logging.NewNop()
	params := usecase.DefaultEngineParams()
	rosters := usecase.NewRosterCache()
	ratings := usecase.NewRatingService(rosters)
	matches := usecase.NewMatchService(ratings, params)
	seasons := usecase.NewSeasonService(
		matches, usecase.NewStandingService(), rosters,
		teamRepo, playerRepo, fixtureRepo, historyRepo,
		logger, 2, 99,
	)
	predictions := usecase.NewPredictionService(ratings, params, 50, 2)
	playerGen := usecase.NewPlayerGenService(id.NewRandomGenerator())
	league := usecase.NewLeagueService(teamRepo, playerRepo, playerGen, logger)

	handler := NewHandler(league, seasons, predictions, logger, 99)
	return NewRouter(handler, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: unmarshal response: %v\nbody: %s", method, path, err, rec.Body.String())
	}
	return rec, envelope
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected payload: %v", envelope)
	}
}

func TestListTeamsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/teams", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	items, _ := envelope["data"].([]any)
	if len(items) != 4 {
		t.Fatalf("unexpected team count: %d", len(items))
	}
}

func TestGetTeamNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/teams/ghost", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	errorObj, _ := envelope["error"].(map[string]any)
	if got, _ := errorObj["status"].(string); got != "NOT_FOUND" {
		t.Fatalf("unexpected error status: %v", errorObj["status"])
	}
}

func TestSeasonFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/seasons/current/advance", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("advance before start: unexpected status %d", rec.Code)
	}

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/seasons", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("start season: unexpected status %d body=%v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["seasonId"] != float64(1) {
		t.Fatalf("unexpected season id: %v", data["seasonId"])
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/seasons", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("restart in progress: unexpected status %d", rec.Code)
	}

	rec, envelope = doRequest(t, router, http.MethodPost, "/v1/seasons/current/advance", `{"gameweeks":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("advance: unexpected status %d body=%v", rec.Code, envelope)
	}
	snaps, _ := envelope["data"].([]any)
	if len(snaps) != 2 {
		t.Fatalf("unexpected snapshot count: %d", len(snaps))
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/seasons/current/table", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("table: unexpected status %d", rec.Code)
	}
	rows, _ := envelope["data"].([]any)
	if len(rows) != 4 {
		t.Fatalf("unexpected table size: %d", len(rows))
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/predictions/title-odds?seed=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("title odds: unexpected status %d body=%v", rec.Code, envelope)
	}
	odds, _ := envelope["data"].([]any)
	if len(odds) != 4 {
		t.Fatalf("unexpected odds count: %d", len(odds))
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/seasons/current/run", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("run season: unexpected status %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/seasons/current/rerate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("rerate: unexpected status %d", rec.Code)
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/seasons/1/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history: unexpected status %d", rec.Code)
	}
	history, _ := envelope["data"].([]any)
	// 4 teams: 6 gameweeks, one snapshot each.
	if len(history) != 6 {
		t.Fatalf("unexpected history length: %d", len(history))
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/seasons/9/history", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing history: unexpected status %d", rec.Code)
	}
}

func TestAdvanceGameweekValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/seasons", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("start season: unexpected status %d", rec.Code)
	}

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/seasons/current/advance", `{"gameweeks":-3}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d body=%v", rec.Code, envelope)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/seasons/current/advance", `{"gameweeks":99}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/seasons/current/advance", `{"bogus":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: unexpected status %d", rec.Code)
	}
}

func TestGenerateSquadsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/league/squads", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%v", rec.Code, envelope)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["squadsGenerated"] != float64(4) {
		t.Fatalf("unexpected squads generated: %v", data["squadsGenerated"])
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/teams/team-00/players", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	players, _ := envelope["data"].([]any)
	if len(players) != 25 {
		t.Fatalf("unexpected roster size: %d", len(players))
	}
}

func TestTitleOddsBeforeSeason(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/predictions/title-odds", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
