// migrate.go
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
	"log"
	"sync/atomic"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unifiedRoadmapMigrated is the process-lifetime run-once guard. It is not
// persisted: a fresh process re-derives the state by querying for items
// outside the default board. Two racing requests may both run the routine;
// every step is idempotent so the outcome is the same.
var unifiedRoadmapMigrated atomic.Bool

// EnsureUnifiedRoadmap folds legacy multi-board data into the single
// default board plus one tag per former board. Best-effort by contract:
// any failure is logged, swallowed, and the guard is still set so a broken
// database cannot stall every listing request behind a retry loop.
func EnsureUnifiedRoadmap(db *gorm.DB) {
	if unifiedRoadmapMigrated.Load() {
		return
	}

	if err := migrateUnifiedRoadmap(db); err != nil {
		log.Printf("legacy board migration failed (continuing): %v", err)
	}
	unifiedRoadmapMigrated.Store(true)
}

func migrateUnifiedRoadmap(db *gorm.DB) error {
	defaultBoard, err := FindOrCreateDefaultBoard(db)
	if err != nil {
		return err
	}

	// Fast exit: nothing lives outside the default board.
	var pending models.RoadmapItem
	err = db.Select("id").Where("board_id <> ?", defaultBoard.ID).First(&pending).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	var legacyBoards []models.Board
	if err := db.Where("id <> ?", defaultBoard.ID).Find(&legacyBoards).Error; err != nil {
		return err
	}
	if len(legacyBoards) == 0 {
		return nil
	}

	// One tag per legacy board, reused when the name already exists.
	tagByBoardID := make(map[string]models.Tag, len(legacyBoards))
	legacyBoardIDs := make([]string, 0, len(legacyBoards))
	for _, b := range legacyBoards {
		var tag models.Tag
		if err := db.Where("name = ?", b.Name).
			FirstOrCreate(&tag, models.Tag{Name: b.Name}).Error; err != nil {
			return err
		}
		tagByBoardID[b.ID] = tag
		legacyBoardIDs = append(legacyBoardIDs, b.ID)
	}

	var items []models.RoadmapItem
	if err := db.Select("id", "board_id").
		Where("board_id IN ?", legacyBoardIDs).Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RoadmapItem{}).
			Where("board_id IN ?", legacyBoardIDs).
			Update("board_id", defaultBoard.ID).Error; err != nil {
			return err
		}

		for _, it := range items {
			tag, ok := tagByBoardID[it.BoardID]
			if !ok {
				continue
			}
			// Duplicate (item_id, tag_id) rows are expected when the
			// routine re-runs; ignore them.
			link := models.ItemTag{ItemID: it.ID, TagID: tag.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&link).Error; err != nil {
				log.Printf("legacy board migration: link %s -> %s skipped: %v", it.ID, tag.ID, err)
			}
		}
		return nil
	})
}

// FindOrCreateDefaultBoard returns the canonical aggregate board. Board
// names are not unique, so this is find-then-create rather than an upsert.
func FindOrCreateDefaultBoard(db *gorm.DB) (*models.Board, error) {
	var board models.Board
	err := db.Where("name = ?", models.DefaultBoardName).First(&board).Error
	if err == nil {
		return &board, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	board = models.Board{
		Name:        models.DefaultBoardName,
		Description: "Default aggregate board (no longer shown in the UI)",
	}
	if err := db.Create(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}
