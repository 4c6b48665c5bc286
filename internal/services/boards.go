// boards.go
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

// ListBoards returns all boards, sortOrder first, newest update breaking ties.
func ListBoards(db *gorm.DB) ([]models.Board, error) {
	var boards []models.Board
	if err := db.Order("sort_order ASC").Order("updated_at DESC").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoard returns one board by id.
func GetBoard(db *gorm.DB, id string) (*models.Board, error) {
	var board models.Board
	if err := db.First(&board, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// CreateBoard persists a new board and audits the creation.
func CreateBoard(db *gorm.DB, in *validate.BoardCreateInput) (*models.Board, error) {
	board := models.Board{
		Name:        in.Name,
		Description: in.Description,
		SortOrder:   in.SortOrder.Int(),
	}
	if err := db.Create(&board).Error; err != nil {
		return nil, err
	}

	auditQuietly(db, "Board", board.ID, models.AuditCreate, map[string]interface{}{"board": board})
	return &board, nil
}

// UpdateBoard applies a partial update: only fields present in the raw
// input change.
func UpdateBoard(db *gorm.DB, id string, in *validate.BoardUpdateInput) (*models.Board, error) {
	board, err := GetBoard(db, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if name, ok := in.Name.Get(); ok {
		fields["name"] = name
	}
	if desc, ok := in.Description.Get(); ok {
		fields["description"] = desc
	}
	if order, ok := in.SortOrder.Get(); ok {
		fields["sort_order"] = order.Int()
	}

	if len(fields) > 0 {
		if err := db.Model(board).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	auditQuietly(db, "Board", board.ID, models.AuditUpdate, map[string]interface{}{"board": board})
	return board, nil
}

// DeleteBoard hard-deletes a board. Items referencing it are left for the
// legacy migration to fold into the default board.
func DeleteBoard(db *gorm.DB, id string) error {
	board, err := GetBoard(db, id)
	if err != nil {
		return err
	}

	if err := db.Delete(board).Error; err != nil {
		return err
	}

	auditQuietly(db, "Board", id, models.AuditDelete, map[string]interface{}{"board": board})
	return nil
}
