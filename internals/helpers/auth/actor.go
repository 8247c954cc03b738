// file: internals/helpers/auth/actor.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cukportal_backend/internals/constants"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID = "user_id"
	LocRole   = "user_role"
)

// Actor is the authenticated identity behind a request. Controllers resolve
// it once and pass it explicitly into every workflow; nothing below the
// controller layer reads fiber locals.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) IsStudent() bool { return a.Role == constants.RoleStudent }
func (a Actor) IsTeacher() bool { return a.Role == constants.RoleTeacher }
func (a Actor) IsAdmin() bool   { return a.Role == constants.RoleAdmin }

// IsReviewer reports whether the actor may review leave applications and
// grade submissions.
func (a Actor) IsReviewer() bool { return a.IsTeacher() || a.IsAdmin() }

// ActorFromContext resolves the Actor from request locals. Mutations requiring
// identity fail closed with 401 when no identity is present.
func ActorFromContext(c *fiber.Ctx) (Actor, error) {
	rawID, _ := c.Locals(LocUserID).(string)
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user identity")
	}

	role, _ := c.Locals(LocRole).(string)
	role = strings.TrimSpace(role)
	if role == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Missing role information")
	}

	return Actor{UserID: id, Role: role}, nil
}
