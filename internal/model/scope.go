package model

// Scope identifies one author in one channel. Pending prompts and ledger
// snapshots are keyed by it so concurrent users never share state.
type Scope struct {
	UserID    string
	ChannelID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
