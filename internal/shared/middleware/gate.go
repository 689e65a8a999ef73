package middleware

import (
	"bepl-backend/internal/shared/apperror"
	"bepl-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Resource describes what the caller is trying to reach.
type Resource struct {
	Method string
	Route  string
}

// Gate is a pure allow/deny decision. Message is used when it denies.
type Gate struct {
	Allow   func(identity Identity, resource Resource) bool
	Message string
}

// RoleIn allows identities whose role is one of roles.
func RoleIn(roles ...string) Gate {
	return Gate{
		Allow: func(identity Identity, _ Resource) bool {
			for _, r := range roles {
				if identity.Role == r {
					return true
				}
			}
			return false
		},
		Message: "Insufficient permissions",
	}
}

// AnyAdmin allows both admin roles.
var AnyAdmin = RoleIn(RoleAdmin, RoleSuperAdmin)

// SuperAdminOnly restricts to the elevated role.
var SuperAdminOnly = Gate{
	Allow:   RoleIn(RoleSuperAdmin).Allow,
	Message: "Superadmin access required",
}

// Require runs gates in order after Authenticate; the first denial aborts with 403.
func Require(gates ...Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.HandleError(c, apperror.Unauthorized("Access token required"))
			c.Abort()
			return
		}

		resource := Resource{Method: c.Request.Method, Route: c.FullPath()}
		for _, g := range gates {
			if !g.Allow(*identity, resource) {
				response.HandleError(c, apperror.Forbidden(g.Message))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
