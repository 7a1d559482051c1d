package domain

// LeaderboardEntry is one row of the cross-user leaderboard: a username and
// that user's total confirmed visit count. Every registered user appears,
// including users with zero visits.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Visits   int64  `json:"visits"`
}
