package model

// LedgerRow is one name→points entry of the leaderboard. Names is the unique key.
type LedgerRow struct {
	Names  string
	Points int
}
