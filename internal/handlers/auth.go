package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/moim/internal/middleware"
	"github.com/example/moim/internal/services"
	"github.com/example/moim/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	codes   *services.AuthCodeService
	members *services.MemberService
	tokens  *services.TokenService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(codes *services.AuthCodeService, members *services.MemberService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{codes: codes, members: members, tokens: tokens}
}

type valueRequest struct {
	Value string `json:"value"`
}

// SendCode issues a one-time login code for a phone number. The code is
// returned in the response in place of an SMS delivery.
func (h *AuthHandler) SendCode(c *fiber.Ctx) error {
	var req valueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Value == "" {
		return utils.Fail(c, fiber.StatusBadRequest, "phone number is required")
	}

	code, err := h.codes.SendCode(req.Value)
	if err != nil {
		return err
	}

	return utils.Success(c, code)
}

// SendSMSCode would deliver the code over SMS. The provider integration is
// not implemented.
func (h *AuthHandler) SendSMSCode(c *fiber.Ctx) error {
	return utils.Success(c, "not implemented")
}

// SendEmailCode would deliver the code over email. The provider integration
// is not implemented.
func (h *AuthHandler) SendEmailCode(c *fiber.Ctx) error {
	return utils.Success(c, "not implemented")
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number"`
	AuthCode    string `json:"auth_code"`
}

// Login verifies the submitted auth code, creating the member on first
// login, and attaches a fresh token pair to the response headers.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.codes.Verify(req.PhoneNumber, req.AuthCode); err != nil {
		switch {
		case errors.Is(err, services.ErrCodeNotFound):
			return utils.Fail(c, fiber.StatusNotFound, "verification code not found")
		case errors.Is(err, services.ErrCodeMismatch):
			return utils.Fail(c, fiber.StatusBadRequest, "verification code does not match")
		}
		return err
	}

	member, err := h.members.FindOrCreate(req.PhoneNumber)
	if err != nil {
		return err
	}

	pair, err := h.tokens.Issue(member)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderAuthorization, "Bearer "+pair.AccessToken)
	c.Set(middleware.RefreshTokenHeader, pair.RefreshToken)

	return utils.Success(c, "login complete")
}

// Logout revokes the authenticated member's refresh tokens.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	existed, err := h.tokens.Revoke(member)
	if err != nil {
		return err
	}
	if !existed {
		return utils.Fail(c, fiber.StatusBadRequest, "token not found")
	}

	return utils.Success(c, "logout complete")
}

// CheckPhoneNumber reports whether a phone number is free to register.
func (h *AuthHandler) CheckPhoneNumber(c *fiber.Ctx) error {
	return h.checkDuplication(c, h.members.IsPhoneNumberAvailable, "phone number is already in use", "phone number is available")
}

// CheckNickname reports whether a nickname is free to register.
func (h *AuthHandler) CheckNickname(c *fiber.Ctx) error {
	return h.checkDuplication(c, h.members.IsNicknameAvailable, "nickname is already in use", "nickname is available")
}

// CheckEmail reports whether an email is free to register.
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	return h.checkDuplication(c, h.members.IsEmailAvailable, "email is already in use", "email is available")
}

func (h *AuthHandler) checkDuplication(c *fiber.Ctx, check func(string) (bool, error), takenMsg, freeMsg string) error {
	var req valueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	available, err := check(req.Value)
	if err != nil {
		return err
	}
	if !available {
		return utils.Fail(c, fiber.StatusConflict, takenMsg)
	}

	return utils.Success(c, freeMsg)
}
