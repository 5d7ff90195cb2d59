package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	apperrors "github.com/restoration-tracker/internal/pkg/errors"
	"github.com/restoration-tracker/internal/pkg/utils"
)

const (
	systemUserIDKey = "system_user_id"
	systemRolesKey  = "system_roles"
)

// Authenticate reads the identity headers set by the API gateway
// (X-User-Id, X-User-Roles) and stores them on the request. A missing or
// malformed user id is a 401.
func Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawID := c.Get("X-User-Id")
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			return utils.SendError(c, apperrors.ErrUnauthorized)
		}

		var roles []string
		for _, role := range strings.Split(c.Get("X-User-Roles"), ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}

		c.Locals(systemUserIDKey, userID)
		c.Locals(systemRolesKey, roles)
		return c.Next()
	}
}

// SystemUserIDFromCtx returns the authenticated user id, or 0 when the
// request did not pass Authenticate.
func SystemUserIDFromCtx(c *fiber.Ctx) int64 {
	if id, ok := c.Locals(systemUserIDKey).(int64); ok {
		return id
	}
	return 0
}

// SystemRolesFromCtx returns the authenticated user's system roles.
func SystemRolesFromCtx(c *fiber.Ctx) []string {
	if roles, ok := c.Locals(systemRolesKey).([]string); ok {
		return roles
	}
	return nil
}

// RequireSystemRoles passes when the user carries at least one of the named
// system roles.
func RequireSystemRoles(required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hasAnyRole(SystemRolesFromCtx(c), required) {
			return c.Next()
		}
		return utils.SendError(c, apperrors.ErrForbidden)
	}
}

// RequireProjectRoles passes when the user holds one of the named project
// roles on the project in the path, resolved through the participation
// repository. System Administrators bypass the membership check.
func RequireProjectRoles(participation repository.ParticipationRepository, required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hasAnyRole(SystemRolesFromCtx(c), []string{domain.RoleSystemAdmin}) {
			return c.Next()
		}

		projectID, err := strconv.ParseInt(c.Params("projectId"), 10, 64)
		if err != nil {
			return utils.SendError(c, apperrors.ErrMissingProjectID)
		}

		participant, err := participation.GetParticipant(c.Context(), projectID, SystemUserIDFromCtx(c))
		if err != nil {
			return utils.SendError(c, apperrors.ErrForbidden)
		}
		if !hasAnyRole([]string{participant.ProjectRoleName}, required) {
			return utils.SendError(c, apperrors.ErrForbidden)
		}
		return c.Next()
	}
}

func hasAnyRole(held, required []string) bool {
	for _, h := range held {
		for _, r := range required {
			if h == r {
				return true
			}
		}
	}
	return false
}
