// feedback.go
//
// Roadmap and user feedback management service
// Copyright (c) 2026 the roadmap-feedback authors
//
// This file is part of roadmap-feedback.
// roadmap-feedback is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roadmap-feedback is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roadmap-feedback.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"github.com/030106mia/Roadmap-Feedback/internal/utils"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FeedbackHandler handles user feedback and praise routes
type FeedbackHandler struct {
	DB *gorm.DB
}

// ListFeedback handles GET /api/feedback
// @Summary List feedback
// @Description List feedback of one kind (FEEDBACK or PRAISE), optionally filtered by a substring query
// @Tags Feedback
// @Produce json
// @Param kind query string false "FEEDBACK or PRAISE (default FEEDBACK)"
// @Param q query string false "Substring search across userName, email, content and todo"
// @Success 200 {array} models.UserFeedback
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	items, err := services.ListFeedback(h.DB, c.Query("kind"), c.Query("q"))
	if err != nil {
		return handleServiceError(c, err, "listFeedback")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// GetFeedback handles GET /api/feedback/:id
// @Summary Get a feedback entry
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} models.UserFeedback
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *fiber.Ctx) error {
	item, err := services.GetFeedback(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "getFeedback")
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

// CreateFeedback handles POST /api/feedback
// @Summary Create a feedback or praise entry
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body validate.FeedbackCreateInput true "Feedback"
// @Success 201 {object} models.UserFeedback
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var in validate.FeedbackCreateInput
	if err := parseAndValidate(c, &in); err != nil {
		return handleServiceError(c, err, "createFeedback")
	}

	item, err := services.CreateFeedback(h.DB, &in)
	if err != nil {
		return handleServiceError(c, err, "createFeedback")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateFeedback handles PATCH /api/feedback/:id
// @Summary Update a feedback entry
// @Description Partial update. Switching kind clears the fields the new kind has no use for; an images key replaces the whole image set.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param feedback body validate.FeedbackUpdateInput true "Fields to change"
// @Success 200 {object} models.UserFeedback
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /feedback/{id} [patch]
func (h *FeedbackHandler) UpdateFeedback(c *fiber.Ctx) error {
	var in validate.FeedbackUpdateInput
	if err := parseAndValidate(c, &in); err != nil {
		return handleServiceError(c, err, "updateFeedback")
	}

	item, err := services.UpdateFeedback(h.DB, c.Params("id"), &in)
	if err != nil {
		return handleServiceError(c, err, "updateFeedback")
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

// DeleteFeedback handles DELETE /api/feedback/:id
// @Summary Delete a feedback entry
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 204 "deleted"
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	if err := services.DeleteFeedback(h.DB, c.Params("id")); err != nil {
		return handleServiceError(c, err, "deleteFeedback")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderFeedback handles POST /api/feedback/reorder
// @Summary Reorder feedback entries
// @Description Apply a batch of sortOrder assignments atomically
// @Tags Feedback
// @Accept json
// @Produce json
// @Param updates body validate.ReorderInput true "Reorder batch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /feedback/reorder [post]
func (h *FeedbackHandler) ReorderFeedback(c *fiber.Ctx) error {
	var in validate.ReorderInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid JSON body: "+err.Error(), fiber.StatusBadRequest, "validation")
	}
	if err := in.Validate(false); err != nil {
		return handleServiceError(c, err, "reorderFeedback")
	}

	count, err := services.ReorderFeedback(h.DB, in.Updates)
	if err != nil {
		return handleServiceError(c, err, "reorderFeedback")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":    true,
		"count": count,
	})
}
