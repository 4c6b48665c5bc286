package services_test

import (
	"sort"
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/services"
)

// TestListTagsSeedsDefaults checks the default palette appears on first
// read, ordered by name, and is not re-seeded.
func TestListTagsSeedsDefaults(t *testing.T) {
	db := setupTestDB(t)

	tags, err := services.ListTags(db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tags) != 8 {
		t.Fatalf("Expected 8 default tags, got %d", len(tags))
	}

	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected tags ordered by name, got %v", names)
	}

	again, err := services.ListTags(db)
	if err != nil {
		t.Fatalf("Second list failed: %v", err)
	}
	if len(again) != 8 {
		t.Errorf("Expected seeding to be idempotent, got %d tags", len(again))
	}
}
