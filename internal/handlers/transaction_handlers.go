package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pelusa-v/hushr/internal/catalog"
	"github.com/pelusa-v/hushr/internal/ledger"
)

type sendTransactionRequest struct {
	To      string `json:"to"`
	Amount  string `json:"amount"`
	Token   string `json:"token"`
	Network string `json:"network"`
}

// TransactionsHandler GET /api/transactions?status=pending|completed
func (a *API) TransactionsHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	l := s.Ledger()
	switch c.Query("status") {
	case "":
		return c.JSON(l.All())
	case "pending":
		return c.JSON(l.Pending())
	case "completed":
		return c.JSON(l.Completed())
	default:
		return badRequest(c, "invalid_status")
	}
}

// SendTransactionHandler POST /api/transactions
func (a *API) SendTransactionHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	var req sendTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_body")
	}
	token, ok := catalog.TokenBySymbol(strings.TrimSpace(req.Token))
	if !ok {
		return badRequest(c, "unknown_token")
	}
	network, ok := catalog.NetworkByName(strings.TrimSpace(req.Network))
	if !ok {
		return badRequest(c, "unknown_network")
	}

	id, err := s.Transfers.Submit(s.Key(), strings.TrimSpace(req.To), req.Amount, token.Symbol, network.Name)
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return badRequest(c, "invalid_amount")
	case errors.Is(err, ledger.ErrMissingField):
		return badRequest(c, "missing_field")
	case err != nil:
		return err
	}
	tx, _ := s.Ledger().Get(id)
	return c.Status(fiber.StatusAccepted).JSON(tx)
}

// CatalogHandler GET /api/catalog
func (a *API) CatalogHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tokens":         catalog.Tokens,
		"networks":       catalog.Networks,
		"gas_priorities": catalog.GasPriorities,
		"privacy_levels": catalog.PrivacyLevels,
	})
}
