package entity

// Verdict is the caller-facing entitlement state. A resolution starts at
// Pending and transitions exactly once to one of the two terminal verdicts.
type Verdict string

const (
	// VerdictPending indicates a resolution that has not completed yet.
	VerdictPending Verdict = "pending"
	// VerdictSubscribed indicates the user is allowed past the paywall.
	VerdictSubscribed Verdict = "subscribed"
	// VerdictNotSubscribed indicates the user is not entitled.
	VerdictNotSubscribed Verdict = "not_subscribed"
)

// String returns the string representation of the Verdict.
func (v Verdict) String() string {
	return string(v)
}

// Subscribed reports whether the verdict grants access.
func (v Verdict) Subscribed() bool {
	return v == VerdictSubscribed
}

// VerdictFor maps the entitlement boolean to its terminal verdict.
func VerdictFor(subscribed bool) Verdict {
	if subscribed {
		return VerdictSubscribed
	}

	return VerdictNotSubscribed
}
