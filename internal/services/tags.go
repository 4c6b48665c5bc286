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

package services

import (
	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"gorm.io/gorm"
)

// defaultTags are seeded on first read so a fresh install offers a usable
// tag palette before any item exists.
var defaultTags = []string{
	"Writing",
	"Inbox & Read",
	"Search",
	"AI chat",
	"Summary",
	"Todos",
	"Label",
	"Setting",
}

// ListTags returns all tags ordered by name. It runs the legacy roadmap
// unification first so tags derived from old boards are present, and seeds
// the default palette when missing.
func ListTags(db *gorm.DB) ([]models.Tag, error) {
	EnsureUnifiedRoadmap(db)

	for _, name := range defaultTags {
		tag := models.Tag{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
	}

	var tags []models.Tag
	if err := db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
