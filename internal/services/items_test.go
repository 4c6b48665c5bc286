package services_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"gorm.io/gorm"
)

func createItemFromJSON(t *testing.T, db *gorm.DB, body string) *models.RoadmapItem {
	t.Helper()
	var in validate.ItemCreateInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Failed to parse create body: %v", err)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Create body failed validation: %v", err)
	}
	item, err := services.CreateItem(db, &in)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	return item
}

func updateItemFromJSON(t *testing.T, db *gorm.DB, id, body string) *models.RoadmapItem {
	t.Helper()
	var in validate.ItemUpdateInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Failed to parse update body: %v", err)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Update body failed validation: %v", err)
	}
	item, err := services.UpdateItem(db, id, &in)
	if err != nil {
		t.Fatalf("Failed to update item: %v", err)
	}
	return item
}

// TestCreateItemDefaults checks priority, legacy status normalization and
// default board placement.
func TestCreateItemDefaults(t *testing.T) {
	db := setupTestDB(t)

	item := createItemFromJSON(t, db, `{"title":"Dark mode","status":"PLANNED"}`)

	if item.Priority != "P2" {
		t.Errorf("Expected default priority P2, got %s", item.Priority)
	}
	if item.Status != "BACKLOG" {
		t.Errorf("Expected PLANNED normalized to BACKLOG, got %s", item.Status)
	}

	board, err := services.GetBoard(db, item.BoardID)
	if err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
	if board.Name != models.DefaultBoardName {
		t.Errorf("Expected default board %q, got %q", models.DefaultBoardName, board.Name)
	}
}

// TestCreateItemWithTagsAndImage covers tag upsert and the inline image.
func TestCreateItemWithTagsAndImage(t *testing.T) {
	db := setupTestDB(t)

	item := createItemFromJSON(t, db, `{
		"title":"Search rework",
		"tags":["Search"," Search ","AI chat"],
		"image":{"url":"https://cdn.example.com/s.png","caption":"mock"}
	}`)

	if len(item.Tags) != 2 {
		t.Fatalf("Expected 2 deduplicated tags, got %d", len(item.Tags))
	}
	if len(item.Images) != 1 || item.Images[0].Caption != "mock" {
		t.Errorf("Expected one inline image with caption, got %+v", item.Images)
	}

	// Reusing a tag name links the existing row instead of duplicating it.
	createItemFromJSON(t, db, `{"title":"Another","tags":"Search"}`)
	var tagCount int64
	db.Model(&models.Tag{}).Where("name = ?", "Search").Count(&tagCount)
	if tagCount != 1 {
		t.Errorf("Expected 1 Search tag, got %d", tagCount)
	}
}

// TestUpdateItemFieldIsolation patches one field and checks nothing else
// moves.
func TestUpdateItemFieldIsolation(t *testing.T) {
	db := setupTestDB(t)

	item := createItemFromJSON(t, db, `{
		"title":"Initial","description":"keep me","priority":"P1",
		"status":"NEXT_UP","jiraKey":"ROAD-7","sortOrder":4
	}`)

	updated := updateItemFromJSON(t, db, item.ID, `{"title":"Renamed"}`)

	if updated.Title != "Renamed" {
		t.Errorf("Expected title Renamed, got %s", updated.Title)
	}
	if updated.Description != "keep me" || updated.Priority != "P1" ||
		updated.Status != "NEXT_UP" || updated.JiraKey != "ROAD-7" || updated.SortOrder != 4 {
		t.Errorf("Unrelated fields changed: %+v", updated)
	}
}

// TestUpdateItemTagReplace checks a tags key replaces the whole set and an
// empty list clears it.
func TestUpdateItemTagReplace(t *testing.T) {
	db := setupTestDB(t)

	item := createItemFromJSON(t, db, `{"title":"Tagged","tags":["a","b"]}`)

	updated := updateItemFromJSON(t, db, item.ID, `{"tags":["b","c"]}`)
	names := map[string]bool{}
	for _, tag := range updated.Tags {
		names[tag.Name] = true
	}
	if len(names) != 2 || !names["b"] || !names["c"] {
		t.Errorf("Expected tag set {b,c}, got %v", names)
	}

	cleared := updateItemFromJSON(t, db, item.ID, `{"tags":[]}`)
	if len(cleared.Tags) != 0 {
		t.Errorf("Expected empty tag set, got %+v", cleared.Tags)
	}
}

// TestUpdateItemClearDates sets then nulls a date.
func TestUpdateItemClearDates(t *testing.T) {
	db := setupTestDB(t)

	item := createItemFromJSON(t, db, `{"title":"Dated","startDate":"2026-03-01"}`)
	if item.StartDate == nil {
		t.Fatal("Expected startDate set on create")
	}

	updated := updateItemFromJSON(t, db, item.ID, `{"startDate":null}`)
	if updated.StartDate != nil {
		t.Errorf("Expected startDate cleared, got %v", updated.StartDate)
	}
}

// TestListItemsOrdering checks sortOrder ascending with newest-created
// breaking ties.
func TestListItemsOrdering(t *testing.T) {
	db := setupTestDB(t)

	createItemFromJSON(t, db, `{"title":"second","sortOrder":1}`)
	createItemFromJSON(t, db, `{"title":"first","sortOrder":0}`)

	items, err := services.ListItems(db, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 || items[0].Title != "first" || items[1].Title != "second" {
		t.Errorf("Unexpected ordering: %+v", items)
	}
}

// TestDeleteItemCleansUp removes the row, tag links and images.
func TestDeleteItemCleansUp(t *testing.T) {
	db := setupTestDB(t)

	item := createItemFromJSON(t, db, `{
		"title":"Doomed","tags":["x"],
		"image":{"url":"https://cdn.example.com/x.png"}
	}`)

	if err := services.DeleteItem(db, item.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := services.GetItem(db, item.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	var links, images int64
	db.Model(&models.ItemTag{}).Where("item_id = ?", item.ID).Count(&links)
	db.Model(&models.ItemImage{}).Where("item_id = ?", item.ID).Count(&images)
	if links != 0 || images != 0 {
		t.Errorf("Expected links and images removed, got %d links %d images", links, images)
	}
}

// TestDeleteAllItems wipes the table and reports the count.
func TestDeleteAllItems(t *testing.T) {
	db := setupTestDB(t)

	createItemFromJSON(t, db, `{"title":"one"}`)
	createItemFromJSON(t, db, `{"title":"two"}`)

	count, err := services.DeleteAllItems(db)
	if err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}

	items, err := services.ListItems(db, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty list after wipe, got %d", len(items))
	}
}
