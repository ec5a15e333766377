package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pelusa-v/hushr/internal/inscribe"
)

type addFileRequest struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type inscribeRequest struct {
	Name string `json:"name"`
}

// InscriptionsHandler GET /api/inscriptions
func (a *API) InscriptionsHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	busy, progress := s.Workspace.Status()
	return c.JSON(fiber.Map{
		"files":      s.Workspace.Files(),
		"recent":     s.Workspace.Recent(),
		"inscribing": busy,
		"progress":   progress,
	})
}

// AddFileHandler POST /api/inscriptions/files
func (a *API) AddFileHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	var req addFileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_body")
	}
	if strings.TrimSpace(req.Name) == "" || req.Size < 0 {
		return badRequest(c, "invalid_file")
	}
	return c.Status(fiber.StatusCreated).JSON(s.Workspace.AddFile(req.Name, req.Size))
}

// RemoveFileHandler DELETE /api/inscriptions/files/:id
func (a *API) RemoveFileHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	if !s.Workspace.RemoveFile(c.Params("id")) {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InscribeHandler POST /api/inscriptions
func (a *API) InscribeHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	var req inscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_body")
	}
	err := s.Workspace.Inscribe(strings.TrimSpace(req.Name))
	switch {
	case errors.Is(err, inscribe.ErrNoFiles):
		return badRequest(c, "no_files")
	case errors.Is(err, inscribe.ErrBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "busy"})
	case err != nil:
		return err
	}
	return c.SendStatus(fiber.StatusAccepted)
}
