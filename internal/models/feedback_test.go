package models_test

import (
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
)

func TestParseTodoList(t *testing.T) {
	if got := models.ParseTodoList(""); got != nil {
		t.Errorf("Expected nil for empty column, got %v", got)
	}

	entries := models.ParseTodoList(`[{"text":"ship it","done":true},{"text":"later"}]`)
	if len(entries) != 2 || !entries[0].Done || entries[1].Text != "later" {
		t.Errorf("Unexpected parse result: %+v", entries)
	}

	// Legacy plain-text todos become a single entry.
	legacy := models.ParseTodoList("call the reporter back")
	if len(legacy) != 1 || legacy[0].Text != "call the reporter back" || legacy[0].Done {
		t.Errorf("Unexpected legacy parse: %+v", legacy)
	}
}

func TestSerializeTodoList(t *testing.T) {
	if got := models.SerializeTodoList(nil); got != "" {
		t.Errorf("Expected empty string for empty list, got %q", got)
	}

	raw := models.SerializeTodoList([]models.TodoEntry{{Text: "a", Done: true}})
	back := models.ParseTodoList(raw)
	if len(back) != 1 || back[0].Text != "a" || !back[0].Done {
		t.Errorf("Round trip lost data: %q -> %+v", raw, back)
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := models.NormalizeStatus("PLANNED"); got != models.StatusBacklog {
		t.Errorf("Expected PLANNED -> BACKLOG, got %s", got)
	}
	if got := models.NormalizeStatus("DONE"); got != "DONE" {
		t.Errorf("Expected DONE unchanged, got %s", got)
	}
}
