// Package auth exposes the registration and login endpoints that bind the
// credential store to the token service.
package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
	"github.com/campus-hub/campus_hub/internal/student"
	"github.com/campus-hub/campus_hub/internal/token"
)

// Handler exposes register/login/me endpoints.
type Handler struct {
	students *student.Service
	tokens   *token.Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(students *student.Service, tokens *token.Service) *Handler {
	return &Handler{students: students, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a student account and returns a fresh token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var input student.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}

	created, err := h.students.Register(c.UserContext(), input)
	if err != nil {
		return err
	}

	signed, err := h.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return err
	}

	return respond.Success(c, http.StatusCreated, "Student registered successfully", fiber.Map{
		"token":   signed,
		"student": created.Public(),
	})
}

// Login verifies credentials and returns a token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	authed, err := h.students.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	signed, err := h.tokens.Issue(authed.ID, authed.Email)
	if err != nil {
		return err
	}

	return respond.Success(c, http.StatusOK, "Login successful", fiber.Map{
		"token":   signed,
		"student": authed.Public(),
	})
}

// Me returns the profile of the token subject.
func (h *Handler) Me(c *fiber.Ctx) error {
	s, err := h.students.Get(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	s.PasswordHash = ""
	return respond.Data(c, fiber.Map{"student": s})
}
