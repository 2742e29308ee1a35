package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/moim/internal/middleware"
	"github.com/example/moim/internal/services"
	"github.com/example/moim/internal/utils"
)

// FriendHandler manages friend graph endpoints. Every route is registered
// behind the session guard.
type FriendHandler struct {
	friends *services.FriendService
}

// NewFriendHandler constructs a FriendHandler.
func NewFriendHandler(friends *services.FriendService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

// List returns the authenticated member's friends.
func (h *FriendHandler) List(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	infos, err := h.friends.List(member)
	if err != nil {
		return err
	}

	return utils.Success(c, infos)
}

// AddByNickname adds a friend looked up by nickname.
func (h *FriendHandler) AddByNickname(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	var req valueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	info, err := h.friends.AddByNickname(member, req.Value)
	if err != nil {
		if errors.Is(err, services.ErrTargetNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "could not find a member with that nickname")
		}
		return err
	}

	return utils.Success(c, info)
}

// AddByPhoneNumber adds a friend looked up by phone number.
func (h *FriendHandler) AddByPhoneNumber(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	var req valueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	info, err := h.friends.AddByPhoneNumber(member, req.Value)
	if err != nil {
		if errors.Is(err, services.ErrTargetNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "could not find a member with that phone number")
		}
		return err
	}

	return utils.Success(c, info)
}

// Remove deletes the edge to the friend addressed by member id.
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	member, ok := middleware.CurrentMember(c)
	if !ok {
		return utils.Fail(c, fiber.StatusUnauthorized, "login required")
	}

	friendID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.friends.Remove(member, uint(friendID)); err != nil {
		if errors.Is(err, services.ErrEdgeNotFound) {
			return utils.Fail(c, fiber.StatusNotFound, "friend removal failed")
		}
		return err
	}

	return utils.Success(c, "friend removed")
}
