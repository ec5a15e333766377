package handlers

import (
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	"github.com/pelusa-v/hushr/internal/hub"
	"github.com/pelusa-v/hushr/internal/identity"
	"github.com/pelusa-v/hushr/internal/session"
)

// WalletHeader carries the connected viewer's address on every API call.
const WalletHeader = "X-Wallet-Address"

type API struct {
	sessions    *session.Registry
	hub         *hub.Hub
	assetPrefix string
}

func New(sessions *session.Registry, h *hub.Hub, assetPrefix string) *API {
	return &API{sessions: sessions, hub: h, assetPrefix: strings.TrimRight(assetPrefix, "/")}
}

// Mount registers every route under /api.
func (a *API) Mount(app fiber.Router) {
	api := app.Group("/api")

	api.Post("/session/connect", a.ConnectHandler)       // ?address=
	api.Post("/session/disconnect", a.DisconnectHandler) // ?address=
	api.Get("/session", a.ProfileHandler)

	api.Get("/avatar/:identity", a.AvatarHandler) // ?wallet=true

	api.Get("/conversations", a.ConversationsHandler)
	api.Get("/conversations/:id", a.ConversationHandler)
	api.Post("/conversations/:id/messages", a.SendMessageHandler)

	api.Get("/feed", a.FeedHandler)
	api.Post("/feed", a.CreatePostHandler)
	api.Post("/feed/more", a.LoadMoreHandler)
	api.Post("/feed/:id/like", a.ToggleLikeHandler)

	api.Get("/transactions", a.TransactionsHandler) // ?status=pending|completed
	api.Post("/transactions", a.SendTransactionHandler)

	api.Get("/inscriptions", a.InscriptionsHandler)
	api.Post("/inscriptions/files", a.AddFileHandler)
	api.Delete("/inscriptions/files/:id", a.RemoveFileHandler)
	api.Post("/inscriptions", a.InscribeHandler)

	api.Get("/catalog", a.CatalogHandler)

	api.Use("/ws", UpgradeMiddleware)
	api.Get("/ws/:address", websocket.New(a.WebsocketHandler))
}

// viewer resolves the session named by the wallet header. A missing header
// means the fallback viewer.
func (a *API) viewer(c *fiber.Ctx) (*session.Session, bool) {
	return a.sessions.Get(utils.ImmutableString(c.Get(WalletHeader)))
}

func notConnected(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not_connected"})
}

func badRequest(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": reason})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
}

// key normalises an address the way sessions are keyed.
func key(address string) string {
	return identity.FromAddress(utils.ImmutableString(address)).WalletAddress
}
