package services_test

import (
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"gorm.io/gorm"
)

func createLegacyBoard(t *testing.T, db *gorm.DB, name string, itemTitles ...string) models.Board {
	t.Helper()
	board := models.Board{Name: name}
	if err := db.Create(&board).Error; err != nil {
		t.Fatalf("Failed to create board %s: %v", name, err)
	}
	for _, title := range itemTitles {
		item := models.RoadmapItem{BoardID: board.ID, Title: title, Priority: "P2", Status: "BACKLOG"}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("Failed to create item %s: %v", title, err)
		}
	}
	return board
}

// TestUnifiedRoadmapMigration verifies legacy boards collapse into the
// default board, with one tag per former board linked to its items.
func TestUnifiedRoadmapMigration(t *testing.T) {
	db := setupTestDB(t)

	createLegacyBoard(t, db, "Mobile", "Push notifications", "Offline mode")
	createLegacyBoard(t, db, "Web", "Keyboard shortcuts")

	services.EnsureUnifiedRoadmap(db)

	defaultBoard, err := services.FindOrCreateDefaultBoard(db)
	if err != nil {
		t.Fatalf("Failed to get default board: %v", err)
	}

	var stranded int64
	db.Model(&models.RoadmapItem{}).Where("board_id <> ?", defaultBoard.ID).Count(&stranded)
	if stranded != 0 {
		t.Errorf("Expected 0 items outside the default board, got %d", stranded)
	}

	for _, name := range []string{"Mobile", "Web"} {
		var tag models.Tag
		if err := db.Where("name = ?", name).First(&tag).Error; err != nil {
			t.Fatalf("Expected tag %q after migration: %v", name, err)
		}
		var links int64
		db.Model(&models.ItemTag{}).Where("tag_id = ?", tag.ID).Count(&links)
		expected := int64(2)
		if name == "Web" {
			expected = 1
		}
		if links != expected {
			t.Errorf("Tag %q: expected %d item links, got %d", name, expected, links)
		}
	}
}

// TestUnifiedRoadmapMigrationIdempotent runs the routine twice and checks
// nothing is duplicated.
func TestUnifiedRoadmapMigrationIdempotent(t *testing.T) {
	db := setupTestDB(t)

	createLegacyBoard(t, db, "Mobile", "Push notifications")

	services.EnsureUnifiedRoadmap(db)
	services.ResetMigrationGuard()
	services.EnsureUnifiedRoadmap(db)

	var tagCount int64
	db.Model(&models.Tag{}).Where("name = ?", "Mobile").Count(&tagCount)
	if tagCount != 1 {
		t.Errorf("Expected 1 Mobile tag after double run, got %d", tagCount)
	}

	var linkCount int64
	db.Model(&models.ItemTag{}).Count(&linkCount)
	if linkCount != 1 {
		t.Errorf("Expected 1 item link after double run, got %d", linkCount)
	}

	var boardCount int64
	db.Model(&models.Board{}).Where("name = ?", models.DefaultBoardName).Count(&boardCount)
	if boardCount != 1 {
		t.Errorf("Expected 1 default board after double run, got %d", boardCount)
	}
}

// TestUnifiedRoadmapMigrationFastExit verifies no tags appear when
// everything already lives on the default board.
func TestUnifiedRoadmapMigrationFastExit(t *testing.T) {
	db := setupTestDB(t)

	defaultBoard, err := services.FindOrCreateDefaultBoard(db)
	if err != nil {
		t.Fatalf("Failed to create default board: %v", err)
	}
	item := models.RoadmapItem{BoardID: defaultBoard.ID, Title: "Already home", Priority: "P2", Status: "BACKLOG"}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	// A stray empty legacy board must not produce a tag.
	createLegacyBoard(t, db, "Empty")

	services.EnsureUnifiedRoadmap(db)

	var tagCount int64
	db.Model(&models.Tag{}).Count(&tagCount)
	if tagCount != 0 {
		t.Errorf("Expected no tags from fast-exit migration, got %d", tagCount)
	}
}

// TestEnsureUnifiedRoadmapRunsOnce verifies the process guard short-circuits
// the second call even when new legacy data appears.
func TestEnsureUnifiedRoadmapRunsOnce(t *testing.T) {
	db := setupTestDB(t)

	services.EnsureUnifiedRoadmap(db)

	createLegacyBoard(t, db, "Late", "Late item")
	services.EnsureUnifiedRoadmap(db)

	var tagCount int64
	db.Model(&models.Tag{}).Where("name = ?", "Late").Count(&tagCount)
	if tagCount != 0 {
		t.Errorf("Expected guard to skip second run, but Late tag exists")
	}
}
