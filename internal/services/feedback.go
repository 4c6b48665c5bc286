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

package services

import (
	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"gorm.io/gorm"
)

// NormalizeKind maps any unknown kind filter to FEEDBACK.
func NormalizeKind(kind string) string {
	if kind == models.KindPraise {
		return models.KindPraise
	}
	return models.KindFeedback
}

// ListFeedback returns feedback rows of one kind, optionally filtered by a
// substring query across userName, email, content and todo. Rows come back
// sortOrder first, newest creation breaking ties.
func ListFeedback(db *gorm.DB, kind, q string) ([]models.UserFeedback, error) {
	query := db.Where("kind = ?", NormalizeKind(kind))
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			db.Where("user_name LIKE ?", like).
				Or("email LIKE ?", like).
				Or("content LIKE ?", like).
				Or("todo LIKE ?", like))
	}

	var items []models.UserFeedback
	err := query.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Order("sort_order ASC").Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetFeedback returns one feedback row with its images.
func GetFeedback(db *gorm.DB, id string) (*models.UserFeedback, error) {
	var item models.UserFeedback
	err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateFeedback persists a new feedback or praise row at the end of its
// kind's list. Fields irrelevant to the kind are stored with their neutral
// value; praise images are attached in the same transaction.
func CreateFeedback(db *gorm.DB, in *validate.FeedbackCreateInput) (*models.UserFeedback, error) {
	row := models.UserFeedback{
		Kind:     in.Kind,
		UserName: in.UserName,
		Email:    in.Email,
		Content:  in.Content,
		Todo:     in.Todo,
		TodoDone: in.TodoDone,
		Device:   "-",
	}
	if in.Kind == models.KindFeedback {
		row.Device = in.Device
		row.FeedbackType = in.FeedbackType
		if row.FeedbackType == "" {
			row.FeedbackType = "REQUEST"
		}
	} else {
		row.Source = in.Source
		if row.Source == "" {
			row.Source = "EMAIL"
		}
		row.Language = in.Language
		if row.Language == "" {
			row.Language = "ZH_CN"
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// New rows land at the end of their kind's list.
		var maxOrder int
		if err := tx.Model(&models.UserFeedback{}).
			Where("kind = ?", in.Kind).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		row.SortOrder = maxOrder + 1

		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		if in.Kind == models.KindPraise {
			for _, u := range in.Images.Slice() {
				img := models.FeedbackImage{FeedbackID: row.ID, URL: u}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := GetFeedback(db, row.ID)
	if err != nil {
		return nil, err
	}

	auditQuietly(db, "UserFeedback", created.ID, models.AuditCreate, created)
	return created, nil
}

// UpdateFeedback applies a partial update. Only fields present in the raw
// input change, with one coupling rule: switching kind clears the fields the
// new kind has no use for, even when they are not resent. An images key
// replaces the whole image set.
func UpdateFeedback(db *gorm.DB, id string, in *validate.FeedbackUpdateInput) (*models.UserFeedback, error) {
	if _, err := GetFeedback(db, id); err != nil {
		return nil, err
	}

	newKind, kindSet := in.Kind.Get()

	fields := map[string]interface{}{}
	if kindSet {
		fields["kind"] = newKind
	}
	if v, ok := in.UserName.Get(); ok {
		fields["user_name"] = v
	}
	if v, ok := in.Email.Get(); ok {
		fields["email"] = v
	}
	if v, ok := in.Content.Get(); ok {
		fields["content"] = v
	}
	if v, ok := in.Todo.Get(); ok {
		fields["todo"] = v
	}
	if in.TodoDone.Set {
		fields["todo_done"] = !in.TodoDone.Null && in.TodoDone.Value
	}

	// device only carries meaning for FEEDBACK; null falls back to "-".
	if in.Device.Set {
		v := in.Device.Value
		if in.Device.Null || v == "" {
			v = "-"
		}
		fields["device"] = v
	}

	// source and language only carry meaning for PRAISE: a switch to
	// FEEDBACK clears them even when not resent.
	if v, ok := in.Source.Get(); ok {
		fields["source"] = v
	} else if in.Source.Set {
		fields["source"] = ""
	} else if kindSet && newKind == models.KindFeedback {
		fields["source"] = ""
	}
	if v, ok := in.Language.Get(); ok {
		fields["language"] = v
	} else if in.Language.Set {
		fields["language"] = ""
	} else if kindSet && newKind == models.KindFeedback {
		fields["language"] = ""
	}

	// feedbackType only carries meaning for FEEDBACK: a switch to PRAISE
	// clears it even when not resent.
	if v, ok := in.FeedbackType.Get(); ok {
		fields["feedback_type"] = v
	} else if in.FeedbackType.Set {
		fields["feedback_type"] = ""
	} else if kindSet && newKind == models.KindPraise {
		fields["feedback_type"] = ""
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.UserFeedback{}).
				Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}

		// Full replace of the image set whenever the key is present.
		if in.Images.Set {
			if err := tx.Where("feedback_id = ?", id).
				Delete(&models.FeedbackImage{}).Error; err != nil {
				return err
			}
			for _, u := range in.Images.Value.Slice() {
				img := models.FeedbackImage{FeedbackID: id, URL: u}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := GetFeedback(db, id)
	if err != nil {
		return nil, err
	}

	auditQuietly(db, "UserFeedback", id, models.AuditUpdate, updated)
	return updated, nil
}

// DeleteFeedback hard-deletes a feedback row together with its images.
func DeleteFeedback(db *gorm.DB, id string) error {
	existing, err := GetFeedback(db, id)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", id).
			Delete(&models.FeedbackImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.UserFeedback{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	auditQuietly(db, "UserFeedback", id, models.AuditDelete, existing)
	return nil
}
