// audit.go
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
	"encoding/json"
	"log"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"gorm.io/gorm"
)

// BatchEntityID marks audit rows covering a whole-batch operation rather
// than a single row (reorders, wipe-all).
const BatchEntityID = "*"

// WriteAudit appends one audit row for a logical mutation. The payload
// snapshot is best-effort: a marshal failure produces an empty payload, not
// an error.
func WriteAudit(db *gorm.DB, entity, entityID, action string, payload interface{}) error {
	var raw []byte
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			raw = b
		}
	}
	entry := models.AuditLog{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Payload:  models.NewJSON(raw),
	}
	return db.Create(&entry).Error
}

// auditQuietly writes an audit row and swallows failures. Mutations must
// never fail their response because the audit insert did.
func auditQuietly(db *gorm.DB, entity, entityID, action string, payload interface{}) {
	if err := WriteAudit(db, entity, entityID, action, payload); err != nil {
		log.Printf("audit write failed for %s/%s %s: %v", entity, entityID, action, err)
	}
}
