// boards.go
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
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BoardHandler handles roadmap board routes
type BoardHandler struct {
	DB *gorm.DB
}

// ListBoards handles GET /api/boards
// @Summary List boards
// @Description List all roadmap boards ordered by sortOrder
// @Tags Boards
// @Produce json
// @Success 200 {array} models.Board
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /boards [get]
func (h *BoardHandler) ListBoards(c *fiber.Ctx) error {
	boards, err := services.ListBoards(h.DB)
	if err != nil {
		return handleServiceError(c, err, "listBoards")
	}
	return c.Status(fiber.StatusOK).JSON(boards)
}

// GetBoard handles GET /api/boards/:id
// @Summary Get a board
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} models.Board
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id} [get]
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	board, err := services.GetBoard(h.DB, c.Params("id"))
	if err != nil {
		return handleServiceError(c, err, "getBoard")
	}
	return c.Status(fiber.StatusOK).JSON(board)
}

// CreateBoard handles POST /api/boards
// @Summary Create a board
// @Tags Boards
// @Accept json
// @Produce json
// @Param board body validate.BoardCreateInput true "Board"
// @Success 201 {object} models.Board
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /boards [post]
func (h *BoardHandler) CreateBoard(c *fiber.Ctx) error {
	var in validate.BoardCreateInput
	if err := parseAndValidate(c, &in); err != nil {
		return handleServiceError(c, err, "createBoard")
	}

	board, err := services.CreateBoard(h.DB, &in)
	if err != nil {
		return handleServiceError(c, err, "createBoard")
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

// UpdateBoard handles PATCH /api/boards/:id
// @Summary Update a board
// @Description Partial update; only fields present in the body change
// @Tags Boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param board body validate.BoardUpdateInput true "Fields to change"
// @Success 200 {object} models.Board
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id} [patch]
func (h *BoardHandler) UpdateBoard(c *fiber.Ctx) error {
	var in validate.BoardUpdateInput
	if err := parseAndValidate(c, &in); err != nil {
		return handleServiceError(c, err, "updateBoard")
	}

	board, err := services.UpdateBoard(h.DB, c.Params("id"), &in)
	if err != nil {
		return handleServiceError(c, err, "updateBoard")
	}
	return c.Status(fiber.StatusOK).JSON(board)
}

// DeleteBoard handles DELETE /api/boards/:id
// @Summary Delete a board
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 204 "deleted"
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /boards/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *fiber.Ctx) error {
	if err := services.DeleteBoard(h.DB, c.Params("id")); err != nil {
		return handleServiceError(c, err, "deleteBoard")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
