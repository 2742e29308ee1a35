package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/moim/internal/middleware"
	"github.com/example/moim/internal/services"
	"github.com/example/moim/internal/utils"
)

// ProfileHandler manages member profile endpoints.
type ProfileHandler struct {
	members *services.MemberService
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(members *services.MemberService) *ProfileHandler {
	return &ProfileHandler{members: members}
}

// GetProfile returns the authenticated member's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	return utils.Success(c, fiber.Map{
		"id":           member.ID,
		"phone_number": member.PhoneNumber,
		"nickname":     member.Nickname,
		"email":        member.Email,
		"role":         member.Role,
		"point":        member.Point,
		"credit":       member.Credit,
		"created_at":   member.CreatedAt,
	})
}

type updateProfileRequest struct {
	Nickname *string `json:"nickname"`
	Email    *string `json:"email"`
}

// UpdateProfile sets the member's nickname and/or email.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Nickname == nil && req.Email == nil {
		return utils.Fail(c, fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.members.UpdateProfile(member, req.Nickname, req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrNicknameTaken):
			return utils.Fail(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return utils.Fail(c, fiber.StatusConflict, err.Error())
		}
		return err
	}

	return utils.Success(c, "profile updated")
}
