package services_test

import (
	"encoding/json"
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"github.com/030106mia/Roadmap-Feedback/internal/validate"
	"gorm.io/gorm"
)

func createFeedbackFromJSON(t *testing.T, db *gorm.DB, body string) *models.UserFeedback {
	t.Helper()
	var in validate.FeedbackCreateInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Failed to parse create body: %v", err)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Create body failed validation: %v", err)
	}
	row, err := services.CreateFeedback(db, &in)
	if err != nil {
		t.Fatalf("Failed to create feedback: %v", err)
	}
	return row
}

func updateFeedbackFromJSON(t *testing.T, db *gorm.DB, id, body string) *models.UserFeedback {
	t.Helper()
	var in validate.FeedbackUpdateInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Failed to parse update body: %v", err)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Update body failed validation: %v", err)
	}
	row, err := services.UpdateFeedback(db, id, &in)
	if err != nil {
		t.Fatalf("Failed to update feedback: %v", err)
	}
	return row
}

// TestCreateFeedbackDefaults checks per-kind defaults for both kinds.
func TestCreateFeedbackDefaults(t *testing.T) {
	db := setupTestDB(t)

	fb := createFeedbackFromJSON(t, db, `{"content":"needs offline mode","device":"IOS"}`)
	if fb.Kind != "FEEDBACK" {
		t.Errorf("Expected kind FEEDBACK, got %s", fb.Kind)
	}
	if fb.FeedbackType != "REQUEST" {
		t.Errorf("Expected default feedbackType REQUEST, got %s", fb.FeedbackType)
	}
	if fb.Device != "IOS" {
		t.Errorf("Expected device IOS, got %s", fb.Device)
	}
	if fb.Source != "" || fb.Language != "" {
		t.Errorf("Expected praise fields empty on FEEDBACK, got %q %q", fb.Source, fb.Language)
	}

	pr := createFeedbackFromJSON(t, db, `{"kind":"PRAISE","content":"love it"}`)
	if pr.Source != "EMAIL" || pr.Language != "ZH_CN" {
		t.Errorf("Expected praise defaults EMAIL/ZH_CN, got %q %q", pr.Source, pr.Language)
	}
	if pr.Device != "-" {
		t.Errorf("Expected device - on PRAISE, got %s", pr.Device)
	}
	if pr.FeedbackType != "" {
		t.Errorf("Expected feedbackType empty on PRAISE, got %s", pr.FeedbackType)
	}
}

// TestCreateFeedbackSortOrder checks each kind keeps its own tail counter.
func TestCreateFeedbackSortOrder(t *testing.T) {
	db := setupTestDB(t)

	f1 := createFeedbackFromJSON(t, db, `{"content":"first"}`)
	f2 := createFeedbackFromJSON(t, db, `{"content":"second"}`)
	p1 := createFeedbackFromJSON(t, db, `{"kind":"PRAISE","content":"praise"}`)

	if f1.SortOrder != 0 || f2.SortOrder != 1 {
		t.Errorf("Expected feedback orders 0,1, got %d,%d", f1.SortOrder, f2.SortOrder)
	}
	if p1.SortOrder != 0 {
		t.Errorf("Expected praise to start its own list at 0, got %d", p1.SortOrder)
	}
}

// TestCreatePraiseWithImages attaches image rows on create.
func TestCreatePraiseWithImages(t *testing.T) {
	db := setupTestDB(t)

	pr := createFeedbackFromJSON(t, db, `{
		"kind":"PRAISE",
		"images":["https://cdn.example.com/1.png","https://cdn.example.com/2.png"]
	}`)

	if len(pr.Images) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(pr.Images))
	}
}

// TestUpdateFeedbackKindSwitchClears verifies switching kind clears the
// fields the new kind has no use for, without being resent.
func TestUpdateFeedbackKindSwitchClears(t *testing.T) {
	db := setupTestDB(t)

	pr := createFeedbackFromJSON(t, db, `{"kind":"PRAISE","content":"nice","source":"STORE","language":"JA"}`)

	switched := updateFeedbackFromJSON(t, db, pr.ID, `{"kind":"FEEDBACK"}`)
	if switched.Source != "" || switched.Language != "" {
		t.Errorf("Expected source/language cleared on switch to FEEDBACK, got %q %q",
			switched.Source, switched.Language)
	}
	if switched.Content != "nice" {
		t.Errorf("Expected content untouched, got %q", switched.Content)
	}

	fb := createFeedbackFromJSON(t, db, `{"content":"bug report","feedbackType":"BUG"}`)
	back := updateFeedbackFromJSON(t, db, fb.ID, `{"kind":"PRAISE"}`)
	if back.FeedbackType != "" {
		t.Errorf("Expected feedbackType cleared on switch to PRAISE, got %q", back.FeedbackType)
	}
}

// TestUpdateFeedbackKindSwitchKeepsResent verifies explicitly resent fields
// win over the clearing rule.
func TestUpdateFeedbackKindSwitchKeepsResent(t *testing.T) {
	db := setupTestDB(t)

	pr := createFeedbackFromJSON(t, db, `{"kind":"PRAISE","content":"hey","source":"SOCIAL"}`)

	switched := updateFeedbackFromJSON(t, db, pr.ID, `{"kind":"FEEDBACK","source":"SOCIAL"}`)
	if switched.Source != "SOCIAL" {
		t.Errorf("Expected resent source kept, got %q", switched.Source)
	}
}

// TestUpdateFeedbackImagesReplace checks an images key replaces the whole
// set.
func TestUpdateFeedbackImagesReplace(t *testing.T) {
	db := setupTestDB(t)

	pr := createFeedbackFromJSON(t, db, `{
		"kind":"PRAISE",
		"images":["https://cdn.example.com/1.png","https://cdn.example.com/2.png"]
	}`)

	updated := updateFeedbackFromJSON(t, db, pr.ID, `{"images":["https://cdn.example.com/3.png"]}`)
	if len(updated.Images) != 1 || updated.Images[0].URL != "https://cdn.example.com/3.png" {
		t.Errorf("Expected single replaced image, got %+v", updated.Images)
	}

	// Omitting the key leaves the set untouched.
	untouched := updateFeedbackFromJSON(t, db, pr.ID, `{"content":"still great"}`)
	if len(untouched.Images) != 1 {
		t.Errorf("Expected image set untouched without images key, got %d", len(untouched.Images))
	}
}

// TestListFeedbackSearch covers the kind filter and substring query.
func TestListFeedbackSearch(t *testing.T) {
	db := setupTestDB(t)

	createFeedbackFromJSON(t, db, `{"content":"dark mode please","userName":"ann"}`)
	createFeedbackFromJSON(t, db, `{"content":"sync is broken","email":"bob@example.com"}`)
	createFeedbackFromJSON(t, db, `{"kind":"PRAISE","content":"dark mode is great"}`)

	byContent, err := services.ListFeedback(db, "FEEDBACK", "dark mode")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byContent) != 1 {
		t.Errorf("Expected 1 FEEDBACK match for 'dark mode', got %d", len(byContent))
	}

	byEmail, err := services.ListFeedback(db, "FEEDBACK", "bob@")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byEmail) != 1 {
		t.Errorf("Expected 1 match by email, got %d", len(byEmail))
	}

	// Unknown kind values fall back to FEEDBACK.
	fallback, err := services.ListFeedback(db, "NONSENSE", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(fallback) != 2 {
		t.Errorf("Expected 2 FEEDBACK rows for unknown kind, got %d", len(fallback))
	}
}

// TestDeleteFeedbackRemovesImages checks the cascade and the audit trail.
func TestDeleteFeedbackRemovesImages(t *testing.T) {
	db := setupTestDB(t)

	pr := createFeedbackFromJSON(t, db, `{"kind":"PRAISE","images":["https://cdn.example.com/1.png"]}`)

	if err := services.DeleteFeedback(db, pr.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var images int64
	db.Model(&models.FeedbackImage{}).Where("feedback_id = ?", pr.ID).Count(&images)
	if images != 0 {
		t.Errorf("Expected images removed, got %d", images)
	}

	var audits int64
	db.Model(&models.AuditLog{}).
		Where("entity = ? AND entity_id = ? AND action = ?", "UserFeedback", pr.ID, models.AuditDelete).
		Count(&audits)
	if audits != 1 {
		t.Errorf("Expected 1 delete audit row, got %d", audits)
	}
}
