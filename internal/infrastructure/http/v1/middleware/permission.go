package middleware

import (
	"github.com/gin-gonic/gin"

	"festa/internal/core/apperror"
	appctx "festa/internal/core/context"
	"festa/internal/core/security"
)

// OwnOnlyKey is set in the gin context when the user may only act on records
// that belong to them. Handlers for ownable resources must honor it.
const OwnOnlyKey = "own_only"

// RequireAccess middleware checks the access policy for a resource/action
// pair. When general access is denied but own-record access is allowed, the
// request proceeds with OwnOnlyKey set so the handler can scope the query.
func RequireAccess(policy *security.Policy, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if policy.Check(security.Request{Role: user.Role, Resource: resource, Action: action}) {
			c.Next()
			return
		}

		if policy.Check(security.Request{Role: user.Role, Resource: resource, Action: action, Own: true}) {
			c.Set(OwnOnlyKey, true)
			c.Next()
			return
		}

		_ = c.Error(
			apperror.NewForbidden("insufficient permissions").
				WithDetail("resource", resource).
				WithDetail("action", action),
		)
		c.Abort()
	}
}

// OwnOnly reports whether the current request is limited to own records.
func OwnOnly(c *gin.Context) bool {
	return c.GetBool(OwnOnlyKey)
}
