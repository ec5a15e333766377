package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pelusa-v/hushr/internal/avatar"
)

// ConnectHandler POST /api/session/connect?address=
func (a *API) ConnectHandler(c *fiber.Ctx) error {
	s, created := a.sessions.Connect(key(c.Query("address")))
	code := fiber.StatusOK
	if created {
		code = fiber.StatusCreated
	}
	return c.Status(code).JSON(s.Profile)
}

// DisconnectHandler POST /api/session/disconnect?address=
func (a *API) DisconnectHandler(c *fiber.Ctx) error {
	if !a.sessions.Disconnect(key(c.Query("address"))) {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProfileHandler GET /api/session
func (a *API) ProfileHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	return c.JSON(fiber.Map{
		"profile":     s.Profile,
		"connected":   s.CreatedAt,
		"avatar_path": avatar.Path(a.assetPrefix, s.Profile.Avatar),
	})
}

// AvatarHandler GET /api/avatar/:identity?wallet=true
func (a *API) AvatarHandler(c *fiber.Ctx) error {
	id := c.Params("identity")
	n := avatar.For(id)
	if wallet, _ := strconv.ParseBool(c.Query("wallet")); wallet {
		n = avatar.ForWallet(id)
	}
	return c.JSON(fiber.Map{"avatar": n, "path": avatar.Path(a.assetPrefix, n)})
}
