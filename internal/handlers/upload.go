// upload.go
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
	"fmt"
	"io"

	"github.com/030106mia/Roadmap-Feedback/internal/storage"
	"github.com/030106mia/Roadmap-Feedback/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles image upload routes
type UploadHandler struct {
	Store *storage.BlobStore
}

// Upload handles POST /api/feedback/upload
// @Summary Upload an image
// @Description Accept one multipart image (png, jpeg, webp or gif, max 5MB) and return its URL
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 413 {object} utils.ErrorResponseStruct
// @Router /feedback/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "missing file field", fiber.StatusBadRequest, "validation")
	}

	if fileHeader.Size > storage.MaxUploadSize {
		return utils.ErrorResponse(c,
			fmt.Sprintf("file exceeds %d byte limit", storage.MaxUploadSize),
			fiber.StatusRequestEntityTooLarge, "validation")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.AllowedContentType(contentType) {
		return utils.ErrorResponse(c,
			fmt.Sprintf("unsupported content type %q", contentType),
			fiber.StatusBadRequest, "validation")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return handleServiceError(c, err, "upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return handleServiceError(c, err, "upload")
	}

	url, err := h.Store.Put(c.Context(), data, contentType)
	if err != nil {
		return handleServiceError(c, err, "upload")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":  true,
		"url": url,
	})
}
