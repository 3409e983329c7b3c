package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-board/internal/session"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

func sessionID(c *fiber.Ctx) (string, error) {
	sid, ok := session.IDFromContext(c)
	if !ok {
		return "", apperrors.NewInternalError(errors.New("session middleware not installed"))
	}
	return sid, nil
}
