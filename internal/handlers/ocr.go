// ocr.go
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

	"github.com/030106mia/Roadmap-Feedback/internal/ai"
	"github.com/030106mia/Roadmap-Feedback/internal/storage"
	"github.com/030106mia/Roadmap-Feedback/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// OCRHandler handles screenshot text extraction routes
type OCRHandler struct {
	Client *ai.OCRClient
}

// ExtractText handles POST /api/ai/ocr
// @Summary Extract text from a screenshot
// @Description Run OCR over one multipart image and return the extracted text
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /ai/ocr [post]
func (h *OCRHandler) ExtractText(c *fiber.Ctx) error {
	if h.Client == nil {
		return utils.ErrorResponse(c, "OCR is not configured",
			fiber.StatusServiceUnavailable, "ocr")
	}

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
		return handleServiceError(c, err, "ocr")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return handleServiceError(c, err, "ocr")
	}

	text, err := h.Client.ExtractText(c.Context(), data, contentType)
	if err != nil {
		return handleServiceError(c, err, "ocr")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":   true,
		"text": text,
	})
}
