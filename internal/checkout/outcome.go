package checkout

// Outcome classifies how a checkout attempt ended. Every error raised inside
// the orchestrator is folded into exactly one of these before it crosses the
// package boundary; raw transport or SDK errors never leave.
type Outcome string

const (
	OutcomeSucceeded Outcome = "SUCCEEDED"
	// OutcomeRejected is a local validation failure: empty cart or missing
	// payer identity. No remote call has been made.
	OutcomeRejected Outcome = "REJECTED"
	// OutcomeSetupFailed covers credential endpoint and sheet
	// initialization failures.
	OutcomeSetupFailed Outcome = "SETUP_FAILED"
	// OutcomeCancelled means the user dismissed the payment sheet.
	OutcomeCancelled Outcome = "CANCELLED"
	// OutcomeDeclined means the payment sheet reported a processing error.
	OutcomeDeclined Outcome = "DECLINED"
)

func (o Outcome) String() string {
	return string(o)
}

// Silent reports whether the outcome should surface no failure notice to the
// user. Cancelling the payment sheet is a neutral act, not a fault.
func (o Outcome) Silent() bool {
	return o == OutcomeSucceeded || o == OutcomeCancelled
}

// Result is the terminal report of one checkout attempt. Reason carries the
// user-facing explanation for rejected and declined outcomes. Amount and
// Currency echo the charge fixed at the start of the attempt.
type Result struct {
	Outcome  Outcome
	Reason   string
	OrderID  string // set on success only
	Amount   int64  // minor currency units
	Currency string
}
