// items.go
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

// ItemHandler handles roadmap item routes
type ItemHandler struct {
	DB *gorm.DB
}

// ListItems handles GET /api/items
// @Summary List roadmap items
// @Description List items with tags and images, ordered by sortOrder with newest-first tie break
// @Tags Items
// @Produce json
// @Param board query string false "Filter by board ID"
// @Success 200 {array} models.RoadmapItem
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := services.ListItems(h.DB, c.Query("board"))
	if err != nil {
		return handleServiceError(c, err, "listItems")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// GetItem handles GET /api/items/:id
// @Summary Get a roadmap item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.RoadmapItem
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	item, err := services.GetItem(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "getItem")
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

// CreateItem handles POST /api/items
// @Summary Create a roadmap item
// @Tags Items
// @Accept json
// @Produce json
// @Param item body validate.ItemCreateInput true "Item"
// @Success 201 {object} models.RoadmapItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var in validate.ItemCreateInput
	if err := parseAndValidate(c, &in); err != nil {
		return handleServiceError(c, err, "createItem")
	}

	item, err := services.CreateItem(h.DB, &in)
	if err != nil {
		return handleServiceError(c, err, "createItem")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem handles PATCH /api/items/:id
// @Summary Update a roadmap item
// @Description Partial update; only fields present in the body change. A tags key replaces the whole tag set.
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body validate.ItemUpdateInput true "Fields to change"
// @Success 200 {object} models.RoadmapItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/{id} [patch]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var in validate.ItemUpdateInput
	if err := parseAndValidate(c, &in); err != nil {
		return handleServiceError(c, err, "updateItem")
	}

	item, err := services.UpdateItem(h.DB, c.Params("id"), &in)
	if err != nil {
		return handleServiceError(c, err, "updateItem")
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
// @Summary Delete a roadmap item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 204 "deleted"
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	if err := services.DeleteItem(h.DB, c.Params("id")); err != nil {
		return handleServiceError(c, err, "deleteItem")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAllItems handles DELETE /api/items
// @Summary Delete all roadmap items
// @Tags Items
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /items [delete]
func (h *ItemHandler) DeleteAllItems(c *fiber.Ctx) error {
	count, err := services.DeleteAllItems(h.DB)
	if err != nil {
		return handleServiceError(c, err, "deleteAllItems")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":    true,
		"count": count,
	})
}

// ReorderItems handles POST /api/items/reorder
// @Summary Reorder roadmap items
// @Description Apply a batch of sortOrder (and optional status) assignments atomically
// @Tags Items
// @Accept json
// @Produce json
// @Param updates body validate.ReorderInput true "Reorder batch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/reorder [post]
func (h *ItemHandler) ReorderItems(c *fiber.Ctx) error {
	var in validate.ReorderInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "invalid JSON body: "+err.Error(), fiber.StatusBadRequest, "validation")
	}
	if err := in.Validate(true); err != nil {
		return handleServiceError(c, err, "reorderItems")
	}

	count, err := services.ReorderItems(h.DB, in.Updates)
	if err != nil {
		return handleServiceError(c, err, "reorderItems")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":    true,
		"count": count,
	})
}
