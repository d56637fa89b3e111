// Package guard decides whether a request may reach a protected handler.
// Decisions are plain values so the policy is testable without any HTTP
// plumbing; the middleware layer only translates them onto the wire.
package guard

import (
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"
)

type Kind int

const (
	// KindAllow admits the request.
	KindAllow Kind = iota
	// KindRedirect silently sends the client elsewhere. Unauthorized access
	// is never surfaced as an error, by product choice, so there is no
	// forbidden variant.
	KindRedirect
	// KindApprovalStatus renders the approval-status view in place of the
	// requested content. Terminal for the request.
	KindApprovalStatus
)

type Decision struct {
	Kind     Kind
	Location string
}

func Allow() Decision {
	return Decision{Kind: KindAllow}
}

func RedirectTo(location string) Decision {
	return Decision{Kind: KindRedirect, Location: location}
}

func ApprovalStatus() Decision {
	return Decision{Kind: KindApprovalStatus}
}

// Authenticate is the first check of every protected route. No session means
// the client goes back to login; an unapproved account sees its approval
// status instead of the requested view.
func Authenticate(session *models.Session) Decision {
	if session == nil {
		return RedirectTo(constvars.RouteLogin)
	}
	switch session.ApprovalStatus {
	case constvars.ApprovalStatusPending, constvars.ApprovalStatusRejected:
		return ApprovalStatus()
	}
	return Allow()
}

// Authorize applies a route's role allow-list. Routes without an allow-list
// pass nil and admit any authenticated, approved user. A role mismatch is a
// silent redirect to the dashboard, not an error.
func Authorize(session *models.Session, allowedRoles []models.Role) Decision {
	if len(allowedRoles) == 0 {
		return Allow()
	}
	if session == nil {
		return RedirectTo(constvars.RouteDashboard)
	}
	for _, role := range allowedRoles {
		if session.Role == role.String() {
			return Allow()
		}
	}
	return RedirectTo(constvars.RouteDashboard)
}

// Evaluate composes the two checks in their fixed order: authentication
// always runs first, the role check only when an allow-list is declared.
// The result is computed fresh on every call; nothing is cached.
func Evaluate(session *models.Session, allowedRoles []models.Role) Decision {
	if decision := Authenticate(session); decision.Kind != KindAllow {
		return decision
	}
	return Authorize(session, allowedRoles)
}
