package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Public routes that still honor a supplied token (my_rating enrichment) use
// OptionalAuth rather than going bare.
func registerPublicRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /auth/register", handler.Register)
	mux.HandleFunc("POST /auth/token", handler.IssueToken)

	mux.Handle("GET /matches", OptionalAuth(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("GET /matches/{matchID}", OptionalAuth(verifier, http.HandlerFunc(handler.GetMatch)))

	mux.HandleFunc("GET /profile/{username}", handler.GetProfile)
	mux.HandleFunc("GET /profile/{username}/memories", handler.ListMemories)
	mux.HandleFunc("GET /search", handler.Search)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /matches/{matchID}/rate", RequireAuth(verifier, http.HandlerFunc(handler.RateMatch)))
	mux.Handle("PATCH /matches/{matchID}/rate", RequireAuth(verifier, http.HandlerFunc(handler.UpdateRating)))

	mux.Handle("POST /profile/{username}/memories", RequireAuth(verifier, http.HandlerFunc(handler.AddMemory)))
	mux.Handle("PATCH /profile/{username}/memories", RequireAuth(verifier, http.HandlerFunc(handler.PatchMemories)))
	mux.Handle("DELETE /profile/{username}/memories/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveMemory)))

	mux.Handle("POST /users/{username}/follow", RequireAuth(verifier, http.HandlerFunc(handler.FollowUser)))
	mux.Handle("DELETE /users/{username}/follow", RequireAuth(verifier, http.HandlerFunc(handler.UnfollowUser)))
	mux.Handle("POST /teams/{teamID}/follow", RequireAuth(verifier, http.HandlerFunc(handler.FollowTeam)))
	mux.Handle("DELETE /teams/{teamID}/follow", RequireAuth(verifier, http.HandlerFunc(handler.UnfollowTeam)))

	mux.Handle("GET /feed/friends", RequireAuth(verifier, http.HandlerFunc(handler.FriendsFeed)))
	mux.Handle("GET /feed/teams", RequireAuth(verifier, http.HandlerFunc(handler.FollowedTeamsFeed)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/jobs/warm-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmStatsJob)))
}
