// tags.go
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
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TagHandler handles tag routes
type TagHandler struct {
	DB *gorm.DB
}

// ListTags handles GET /api/tags
// @Summary List tags
// @Description List all tags ordered by name, seeding the default palette when missing
// @Tags Tags
// @Produce json
// @Success 200 {array} models.Tag
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tags [get]
func (h *TagHandler) ListTags(c *fiber.Ctx) error {
	tags, err := services.ListTags(h.DB)
	if err != nil {
		return handleServiceError(c, err, "listTags")
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}
