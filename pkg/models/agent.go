package models

// RegisterParams is the trust-bootstrapped registration request.
type RegisterParams struct {
	UserID       string
	AccountID    string
	AgentVersion string
	Platform     string
}

// Registration is the outcome of a successful agent registration.
// Token is the plaintext bearer token; it is never persisted and never
// appears again after this response.
type Registration struct {
	AgentID             string
	AccountID           string
	Token               string
	PollIntervalSeconds int
}

// Heartbeat statuses an agent may report.
const (
	HeartbeatIdle      = "IDLE"
	HeartbeatExecuting = "EXECUTING"
	HeartbeatPaused    = "PAUSED"
)
