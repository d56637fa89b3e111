package middlewares

import (
	"net/http"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/core/guard"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/utils"
)

// RequireRoles protects a route subtree with the guard policy. An empty role
// list still forces authentication; a non-empty list additionally restricts
// the route to those roles. Denials are silent redirects, never errors.
func (m *Middlewares) RequireRoles(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())

			decision := guard.Evaluate(session, allowedRoles)
			switch decision.Kind {
			case guard.KindRedirect:
				utils.BuildRedirectResponse(w, decision.Location)
			case guard.KindApprovalStatus:
				utils.BuildSuccessResponse(w, constvars.StatusOK, approvalStatusMessage(session), map[string]string{
					"approvalStatus": session.ApprovalStatus,
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func approvalStatusMessage(session *models.Session) string {
	if session.ApprovalStatus == constvars.ApprovalStatusRejected {
		return constvars.ErrClientAccountRejected
	}
	return constvars.ErrClientAccountPendingApproval
}
