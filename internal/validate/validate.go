// validate.go
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

// Package validate holds the request payload shapes and their field rules.
// Every rule failure is reported as a 400 CustomError carrying the first
// violated constraint, before any persistence logic runs. Fields wrapped in
// types.Optional keep track of raw-input presence for partial updates.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
	"github.com/gofiber/fiber/v2"
)

const (
	// MaxReorderBatch bounds a single reorder request.
	MaxReorderBatch = 500
	// MaxTags bounds the tag set of one roadmap item.
	MaxTags = 12
	// MaxImages bounds the image set of one feedback row.
	MaxImages = 12
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var priorities = map[string]bool{
	models.PriorityP0: true,
	models.PriorityP1: true,
	models.PriorityP2: true,
	models.PriorityP3: true,
}

// statuses accepted on input; PLANNED is normalized to BACKLOG downstream.
var statuses = map[string]bool{
	models.StatusBacklog:       true,
	models.StatusNextUp:        true,
	models.StatusInProgress:    true,
	models.StatusDone:          true,
	models.StatusLegacyPlanned: true,
}

// reorderStatuses excludes the legacy alias: drag targets are always one of
// the four live columns.
var reorderStatuses = map[string]bool{
	models.StatusBacklog:    true,
	models.StatusNextUp:     true,
	models.StatusInProgress: true,
	models.StatusDone:       true,
}

var kinds = map[string]bool{
	models.KindFeedback: true,
	models.KindPraise:   true,
}

var devices = map[string]bool{
	"IOS": true, "MAC": true, "WIN": true, "ANDROID": true, "PC": true, "-": true,
}

var feedbackTypes = map[string]bool{
	"REQUEST": true, "SUGGESTION": true, "BUG": true,
}

var praiseSources = map[string]bool{
	"EMAIL": true, "STORE": true, "SOCIAL": true,
}

var languages = map[string]bool{
	"ZH_CN": true, "ZH_TW": true, "EN": true, "JA": true, "FR": true,
}

func fail(msg string) *types.CustomError {
	return &types.CustomError{
		Code:    fiber.StatusBadRequest,
		Message: msg,
		Type:    "validation",
	}
}

func checkLen(field, v string, min, max int) *types.CustomError {
	if len(v) < min {
		return fail(fmt.Sprintf("%s is required", field))
	}
	if len(v) > max {
		return fail(fmt.Sprintf("%s exceeds %d characters", field, max))
	}
	return nil
}

func checkEnum(field, v string, domain map[string]bool) *types.CustomError {
	if !domain[v] {
		return fail(fmt.Sprintf("%s: unknown value %q", field, v))
	}
	return nil
}

// ParseDate converts a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(v string) (*time.Time, *types.CustomError) {
	if !dateRe.MatchString(v) {
		return nil, fail(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", v))
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fail(fmt.Sprintf("invalid date %q: %v", v, err))
	}
	return &t, nil
}

// NormalizeTagNames trims, drops empties, truncates each name to the tag
// length limit, dedupes preserving first occurrence, and caps the list.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len(name) > 40 {
			name = name[:40]
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}
