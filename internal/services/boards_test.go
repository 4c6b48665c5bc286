package services_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
)

// TestBoardCRUD walks a board through create, partial update and delete.
func TestBoardCRUD(t *testing.T) {
	db := setupTestDB(t)

	var in validate.BoardCreateInput
	if err := json.Unmarshal([]byte(`{"name":"  Mobile  ","description":"apps","sortOrder":"3"}`), &in); err != nil {
		t.Fatalf("Failed to parse body: %v", err)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validation failed: %v", err)
	}

	board, err := services.CreateBoard(db, &in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if board.Name != "Mobile" {
		t.Errorf("Expected trimmed name Mobile, got %q", board.Name)
	}
	if board.SortOrder != 3 {
		t.Errorf("Expected string sortOrder coerced to 3, got %d", board.SortOrder)
	}

	var up validate.BoardUpdateInput
	if err := json.Unmarshal([]byte(`{"description":"mobile apps"}`), &up); err != nil {
		t.Fatalf("Failed to parse body: %v", err)
	}
	if err := up.Validate(); err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	updated, err := services.UpdateBoard(db, board.ID, &up)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Mobile" || updated.Description != "mobile apps" {
		t.Errorf("Partial update touched the wrong fields: %+v", updated)
	}

	if err := services.DeleteBoard(db, board.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := services.GetBoard(db, board.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

// TestListBoardsOrdering checks sortOrder ascending.
func TestListBoardsOrdering(t *testing.T) {
	db := setupTestDB(t)

	for _, b := range []struct {
		name  string
		order int
	}{{"second", 2}, {"first", 1}} {
		in := validate.BoardCreateInput{Name: b.name, SortOrder: types.FlexInt(b.order)}
		if _, err := services.CreateBoard(db, &in); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	boards, err := services.ListBoards(db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(boards) != 2 || boards[0].Name != "first" {
		t.Errorf("Unexpected ordering: %+v", boards)
	}
}
