package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerTournamentRoutes(mux, handler, verifier)
	registerTeamRoutes(mux, handler, verifier)
	registerMatchRoutes(mux, handler, verifier)
	registerSquadRoutes(mux, handler, verifier)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("GET /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.ListTournaments)))
	mux.Handle("GET /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTournament)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTournament)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTournament)))
	mux.Handle("GET /v1/tournaments/{tournamentID}/series", RequireAuth(verifier, http.HandlerFunc(handler.ListSeriesByTournament)))

	mux.Handle("POST /v1/series", RequireAuth(verifier, http.HandlerFunc(handler.CreateSeries)))
	mux.Handle("GET /v1/series", RequireAuth(verifier, http.HandlerFunc(handler.ListSeries)))
	mux.Handle("GET /v1/series/{seriesID}", RequireAuth(verifier, http.HandlerFunc(handler.GetSeries)))
	mux.Handle("PUT /v1/series/{seriesID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSeries)))
	mux.Handle("DELETE /v1/series/{seriesID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteSeries)))
	mux.Handle("GET /v1/series/{seriesID}/squads", RequireAuth(verifier, http.HandlerFunc(handler.ListSquadsBySeries)))
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("GET /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayersByTeam)))

	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("GET /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("GET /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("GET /v1/matches", RequireAuth(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("GET /v1/matches/live", RequireAuth(verifier, http.HandlerFunc(handler.ListLiveMatches)))
	mux.Handle("GET /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("PUT /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("GET /v1/matches/{matchID}/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetMatchDashboard)))

	mux.Handle("POST /v1/matches/{matchID}/powerplays", RequireAuth(verifier, http.HandlerFunc(handler.CreatePowerplay)))
	mux.Handle("GET /v1/matches/{matchID}/powerplays", RequireAuth(verifier, http.HandlerFunc(handler.ListPowerplays)))
	mux.Handle("GET /v1/matches/{matchID}/powerplays/current", RequireAuth(verifier, http.HandlerFunc(handler.GetCurrentPowerplay)))
	mux.Handle("POST /v1/matches/{matchID}/powerplays/deactivate", RequireAuth(verifier, http.HandlerFunc(handler.DeactivatePowerplay)))
	mux.Handle("PUT /v1/matches/{matchID}/powerplays/{powerplayID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePowerplay)))
	mux.Handle("DELETE /v1/matches/{matchID}/powerplays/{powerplayID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePowerplay)))
	mux.Handle("POST /v1/matches/{matchID}/powerplays/{powerplayID}/activate", RequireAuth(verifier, http.HandlerFunc(handler.ActivatePowerplay)))

	mux.Handle("POST /v1/matches/{matchID}/balls", RequireAuth(verifier, http.HandlerFunc(handler.RecordBall)))
	mux.Handle("GET /v1/matches/{matchID}/balls", RequireAuth(verifier, http.HandlerFunc(handler.ListBalls)))
	mux.Handle("PUT /v1/matches/{matchID}/current-over", RequireAuth(verifier, http.HandlerFunc(handler.OverrideCurrentOver)))
}

func registerSquadRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/squads", RequireAuth(verifier, http.HandlerFunc(handler.CreateSquad)))
	mux.Handle("GET /v1/squads/{squadID}", RequireAuth(verifier, http.HandlerFunc(handler.GetSquad)))
	mux.Handle("PUT /v1/squads/{squadID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateSquad)))
	mux.Handle("DELETE /v1/squads/{squadID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteSquad)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-live", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncLiveJob)))
}
