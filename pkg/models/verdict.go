package models

// VerdictReason explains why execution is disallowed for an account.
type VerdictReason string

const (
	// ReasonSessionInvalid: account missing, or its platform session is
	// expired/disconnected.
	ReasonSessionInvalid VerdictReason = "SESSION_INVALID"
	// ReasonRiskPause: account suspended or latest risk level is critical.
	ReasonRiskPause VerdictReason = "RISK_PAUSE"
	// ReasonUserPaused: the user explicitly paused execution.
	ReasonUserPaused VerdictReason = "USER_PAUSED"
)

// Verdict is the execution permission for an account, returned by the risk
// oracle and relayed verbatim on heartbeat and control-state. The agent
// contract: on Allowed=false the agent stops executing and stops pulling
// until a later heartbeat re-authorizes.
type Verdict struct {
	Allowed bool          `json:"allowed"`
	Reason  VerdictReason `json:"reason,omitempty"`
}

// Allow is the affirmative verdict.
func Allow() Verdict {
	return Verdict{Allowed: true}
}

// Deny builds a refusal verdict with the given reason.
func Deny(reason VerdictReason) Verdict {
	return Verdict{Allowed: false, Reason: reason}
}
