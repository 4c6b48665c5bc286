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

package services

import (
	"time"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"gorm.io/gorm"
)

// ListItems returns roadmap items with images and tags, optionally filtered
// by board. The legacy board migration runs opportunistically first so the
// listing reflects the unified view.
func ListItems(db *gorm.DB, boardID string) ([]models.RoadmapItem, error) {
	EnsureUnifiedRoadmap(db)

	query := db.Preload("Images").Preload("Tags").
		Order("sort_order ASC").Order("created_at DESC")
	if boardID != "" {
		query = query.Where("board_id = ?", boardID)
	}

	var items []models.RoadmapItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns one roadmap item with images and tags.
func GetItem(db *gorm.DB, id string) (*models.RoadmapItem, error) {
	var item models.RoadmapItem
	err := db.Preload("Images").Preload("Tags").First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem persists a new roadmap item with its tag links and optional
// inline image, defaulting to the aggregate board, and audits the creation.
func CreateItem(db *gorm.DB, in *validate.ItemCreateInput) (*models.RoadmapItem, error) {
	boardID := in.BoardID
	if boardID == "" {
		board, err := FindOrCreateDefaultBoard(db)
		if err != nil {
			return nil, err
		}
		boardID = board.ID
	}

	tags, err := upsertTags(db, in.Tags.Slice())
	if err != nil {
		return nil, err
	}

	item := models.RoadmapItem{
		BoardID:     boardID,
		Title:       in.Title,
		Description: in.Description,
		Source:      in.Source,
		JiraKey:     in.JiraKey,
		Priority:    in.Priority,
		Status:      in.Status,
		StartDate:   dateFromOptional(in.StartDate),
		EndDate:     dateFromOptional(in.EndDate),
		SortOrder:   in.SortOrder.Int(),
	}
	if in.Image != nil {
		item.Images = []models.ItemImage{{URL: in.Image.URL, Caption: in.Image.Caption}}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(&item).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&item).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := GetItem(db, item.ID)
	if err != nil {
		return nil, err
	}

	auditQuietly(db, "RoadmapItem", created.ID, models.AuditCreate,
		map[string]interface{}{"item": created})
	return created, nil
}

// UpdateItem applies a partial update. Only fields present in the raw input
// change; a tags key replaces the whole tag set.
func UpdateItem(db *gorm.DB, id string, in *validate.ItemUpdateInput) (*models.RoadmapItem, error) {
	item, err := GetItem(db, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if v, ok := in.Title.Get(); ok {
		fields["title"] = v
	}
	if v, ok := in.Description.Get(); ok {
		fields["description"] = v
	}
	if v, ok := in.Source.Get(); ok {
		fields["source"] = v
	}
	if v, ok := in.JiraKey.Get(); ok {
		fields["jira_key"] = v
	}
	if v, ok := in.Priority.Get(); ok {
		fields["priority"] = v
	}
	if v, ok := in.Status.Get(); ok {
		fields["status"] = v
	}
	if v, ok := in.SortOrder.Get(); ok {
		fields["sort_order"] = v.Int()
	}
	if in.StartDate.Set {
		fields["start_date"] = dateFromOptional(in.StartDate)
	}
	if in.EndDate.Set {
		fields["end_date"] = dateFromOptional(in.EndDate)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(item).Updates(fields).Error; err != nil {
				return err
			}
		}
		if in.Tags.Set {
			tags, err := upsertTags(tx, in.Tags.Value.Slice())
			if err != nil {
				return err
			}
			// Full replace of the tag set, never a diff.
			if len(tags) == 0 {
				if err := tx.Model(item).Association("Tags").Clear(); err != nil {
					return err
				}
			} else if err := tx.Model(item).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := GetItem(db, id)
	if err != nil {
		return nil, err
	}

	auditQuietly(db, "RoadmapItem", id, models.AuditUpdate,
		map[string]interface{}{"item": updated})
	return updated, nil
}

// DeleteItem hard-deletes a roadmap item with its images and tag links.
func DeleteItem(db *gorm.DB, id string) error {
	item, err := GetItem(db, id)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.ItemImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RoadmapItem{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	auditQuietly(db, "RoadmapItem", id, models.AuditDelete,
		map[string]interface{}{"item": item})
	return nil
}

// DeleteAllItems wipes every roadmap item (dangerous, dashboard reset).
// Audited as one batch event.
func DeleteAllItems(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ItemTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.ItemImage{}).Error; err != nil {
			return err
		}
		res := tx.Where("1 = 1").Delete(&models.RoadmapItem{})
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	auditQuietly(db, "RoadmapItem", BatchEntityID, models.AuditDelete,
		map[string]interface{}{"all": true, "count": count})
	return count, nil
}

// upsertTags finds or creates one tag per normalized name, preserving order.
func upsertTags(db *gorm.DB, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		if err := db.Where("name = ?", name).
			FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// dateFromOptional converts a validated YYYY-MM-DD Optional into a nullable
// time. Explicit null or empty string clears the date.
func dateFromOptional(opt types.Optional[string]) *time.Time {
	v, ok := opt.Get()
	if !ok || v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}
