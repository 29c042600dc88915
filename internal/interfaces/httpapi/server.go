package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func registerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("POST /v1/league/squads", handler.GenerateSquads)

	mux.HandleFunc("POST /v1/seasons", handler.StartSeason)
	mux.HandleFunc("POST /v1/seasons/current/advance", handler.AdvanceGameweek)
	mux.HandleFunc("POST /v1/seasons/current/run", handler.RunSeason)
	mux.HandleFunc("POST /v1/seasons/current/rerate", handler.RerateTeams)
	mux.HandleFunc("GET /v1/seasons/current/table", handler.GetTable)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/history", handler.GetSeasonHistory)

	mux.HandleFunc("GET /v1/predictions/title-odds", handler.GetTitleOdds)
}
