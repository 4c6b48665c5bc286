// common.go
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
	"errors"

	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
	"github.com/030106mia/Roadmap-Feedback/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// handleServiceError maps service-layer errors onto the JSON error envelope:
// missing entities become 404, validation failures keep their own status,
// everything else is a 500 tagged with the operation name.
func handleServiceError(c *fiber.Ctx, err error, operation string) error {
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, err.Error())
	}

	var ce *types.CustomError
	if errors.As(err, &ce) {
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, operation)
}

// parseAndValidate decodes the request body into dst and runs its Validate
// method, returning a 400 validation error for malformed JSON.
func parseAndValidate(c *fiber.Ctx, dst interface{ Validate() error }) error {
	if err := c.BodyParser(dst); err != nil {
		return &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body: " + err.Error(),
			Type:    "validation",
		}
	}
	return dst.Validate()
}
