package domain

import (
	"net/url"
)

// Landing routes used by the access guard.
const (
	LoginRoute   = "/login"
	LandingRoute = "/dashboard"
)

// GuardState is the outcome of one guard evaluation.
type GuardState string

const (
	// StateUnknown means the session slot has not been read yet.
	StateUnknown         GuardState = "unknown"
	StateUnauthenticated GuardState = "unauthenticated"
	StateAuthorized      GuardState = "authorized"
	StateUnauthorized    GuardState = "unauthorized"
)

// RedirectState is the auxiliary data attached to a redirect.
type RedirectState struct {
	From          string      `json:"from,omitempty"`
	AccessDenied  bool        `json:"accessDenied,omitempty"`
	RequiredLevel AccessLevel `json:"requiredLevel,omitempty"`
}

// Decision is the result of evaluating a protected navigation.
type Decision struct {
	State      GuardState     `json:"state"`
	RedirectTo string         `json:"redirectTo,omitempty"`
	Redirect   *RedirectState `json:"redirectState,omitempty"`
	Identity   *Identity      `json:"-"`
}

// Allowed reports whether the protected content may be rendered.
func (d Decision) Allowed() bool {
	return d.State == StateAuthorized
}

// Location renders RedirectTo with its state encoded as query parameters.
// It returns an empty string when the decision is not a redirect.
func (d Decision) Location() string {
	if d.RedirectTo == "" {
		return ""
	}
	q := url.Values{}
	if d.Redirect != nil {
		if d.Redirect.From != "" {
			q.Set("from", d.Redirect.From)
		}
		if d.Redirect.AccessDenied {
			q.Set("accessDenied", "true")
		}
		if d.Redirect.RequiredLevel != "" {
			q.Set("requiredLevel", string(d.Redirect.RequiredLevel))
		}
	}
	if len(q) == 0 {
		return d.RedirectTo
	}
	return d.RedirectTo + "?" + q.Encode()
}

// Decide evaluates a navigation to from, which requires the given tier,
// against the current session (nil when there is none). It is pure: the
// caller must pass a freshly read session on every navigation.
func Decide(required AccessLevel, session *Identity, from string) Decision {
	if session == nil {
		return Decision{
			State:      StateUnauthenticated,
			RedirectTo: LoginRoute,
			Redirect:   &RedirectState{From: from},
		}
	}
	if !session.AccessLevel.Satisfies(required) {
		return Decision{
			State:      StateUnauthorized,
			RedirectTo: LandingRoute,
			Redirect:   &RedirectState{AccessDenied: true, RequiredLevel: required},
			Identity:   session,
		}
	}
	return Decision{State: StateAuthorized, Identity: session}
}
