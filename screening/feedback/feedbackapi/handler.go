package feedbackapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/kernel"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/feedback/feedbacksrv"
)

type FeedbackHandlers struct {
	service *feedbacksrv.Service
}

func NewFeedbackHandlers(service *feedbacksrv.Service) *FeedbackHandlers {
	return &FeedbackHandlers{service: service}
}

func (h *FeedbackHandlers) RegisterRoutes(app *fiber.App) {
	entries := app.Group("/api/v1/feedback")

	entries.Post("/", h.SubmitFeedback)  // Record visitor feedback
	entries.Get("/stats", h.GetStats)    // Rating distribution
	entries.Get("/", h.ListFeedback)     // List all
}

// SubmitFeedback records a visitor rating
// POST /api/v1/feedback
func (h *FeedbackHandlers) SubmitFeedback(c *fiber.Ctx) error {
	var req feedback.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	response, err := h.service.SubmitFeedback(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// ListFeedback lists stored feedback entries
// GET /api/v1/feedback?page=1&page_size=20
func (h *FeedbackHandlers) ListFeedback(c *fiber.Ctx) error {
	req := feedback.ListFeedbackRequest{
		Pagination: kernel.PaginationOptions{
			Page:     c.QueryInt("page", 1),
			PageSize: c.QueryInt("page_size", 20),
		},
	}

	response, err := h.service.ListFeedback(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// GetStats returns the rating distribution
// GET /api/v1/feedback/stats
func (h *FeedbackHandlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
