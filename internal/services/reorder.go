// reorder.go
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
	"fmt"
	"strings"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"gorm.io/gorm"
)

// reorderPayload is the single audit entry summarizing a whole batch.
type reorderPayload struct {
	Reorder bool `json:"reorder"`
	Count   int  `json:"count"`
}

// ReorderItems applies a validated batch of sortOrder (and optional status)
// updates to roadmap items in one transaction. Any tuple referencing a
// nonexistent id aborts the whole batch. When storage reports the ordering
// column missing (schema-evolution compatibility), the batch is retried as
// raw per-row statements with weaker, row-by-row atomicity.
func ReorderItems(db *gorm.DB, updates []validate.ReorderUpdate) (int, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			fields := map[string]interface{}{"sort_order": u.SortOrder.Int()}
			if status, ok := u.Status.Get(); ok && status != "" {
				fields["status"] = status
			}
			res := tx.Model(&models.RoadmapItem{}).Where("id = ?", u.ID).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: roadmap item %s", ErrNotFound, u.ID)
			}
		}
		return nil
	})
	if err != nil {
		if !isMissingSortOrderErr(err) {
			return 0, err
		}
		if err := rawReorderFallback(db, "roadmap_items", updates); err != nil {
			return 0, err
		}
	}

	auditQuietly(db, "RoadmapItem", BatchEntityID, models.AuditUpdate,
		reorderPayload{Reorder: true, Count: len(updates)})
	return len(updates), nil
}

// ReorderFeedback applies a validated batch of sortOrder updates to the
// single feedback list. Same atomicity and fallback contract as item
// reorders; status never applies here.
func ReorderFeedback(db *gorm.DB, updates []validate.ReorderUpdate) (int, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&models.UserFeedback{}).Where("id = ?", u.ID).
				Update("sort_order", u.SortOrder.Int())
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: feedback %s", ErrNotFound, u.ID)
			}
		}
		return nil
	})
	if err != nil {
		if !isMissingSortOrderErr(err) {
			return 0, err
		}
		if err := rawReorderFallback(db, "user_feedbacks", updates); err != nil {
			return 0, err
		}
	}

	auditQuietly(db, "UserFeedback", BatchEntityID, models.AuditUpdate,
		reorderPayload{Reorder: true, Count: len(updates)})
	return len(updates), nil
}

// rawReorderFallback issues one raw UPDATE per tuple outside a transaction.
// Rows already applied stay applied when a later statement fails; the first
// error is surfaced. This weaker atomicity is the documented trade-off for
// databases whose live schema is ahead of the model metadata.
func rawReorderFallback(db *gorm.DB, table string, updates []validate.ReorderUpdate) error {
	for _, u := range updates {
		stmt := fmt.Sprintf("UPDATE %s SET sort_order = ? WHERE id = ?", table)
		if err := db.Exec(stmt, u.SortOrder.Int(), u.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

// isMissingSortOrderErr detects the ordering column being reported absent,
// across the dialects AutoMigrate supports.
func isMissingSortOrderErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "sort_order") {
		return false
	}
	return strings.Contains(msg, "no such column") || // sqlite
		strings.Contains(msg, "unknown column") || // mysql
		strings.Contains(msg, "does not exist") || // postgres
		strings.Contains(msg, "invalid column") // sqlserver
}
