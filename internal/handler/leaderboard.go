package handler

import "net/http"

// GetLeaderboard handles GET /leaderboard.
// Entries arrive pre-sorted from the service: visit count descending, ties
// broken by username ascending, zero-visit users included.
func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.Leaderboard(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
