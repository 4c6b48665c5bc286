package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/030106mia/Roadmap-Feedback/internal/database"
	"github.com/030106mia/Roadmap-Feedback/internal/handlers"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp creates an in-memory SQLite database and a Fiber app with
// the API routes under test.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	app := fiber.New()

	boardHandler := &handlers.BoardHandler{DB: db}
	itemHandler := &handlers.ItemHandler{DB: db}
	feedbackHandler := &handlers.FeedbackHandler{DB: db}
	tagHandler := &handlers.TagHandler{DB: db}

	api := app.Group("/api")
	api.Get("/boards", boardHandler.ListBoards)
	api.Post("/boards", boardHandler.CreateBoard)
	api.Get("/boards/:id", boardHandler.GetBoard)
	api.Patch("/boards/:id", boardHandler.UpdateBoard)
	api.Delete("/boards/:id", boardHandler.DeleteBoard)
	api.Get("/items", itemHandler.ListItems)
	api.Post("/items", itemHandler.CreateItem)
	api.Post("/items/reorder", itemHandler.ReorderItems)
	api.Get("/items/:id", itemHandler.GetItem)
	api.Patch("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)
	api.Get("/feedback", feedbackHandler.ListFeedback)
	api.Post("/feedback", feedbackHandler.CreateFeedback)
	api.Get("/feedback/:id", feedbackHandler.GetFeedback)
	api.Patch("/feedback/:id", feedbackHandler.UpdateFeedback)
	api.Delete("/feedback/:id", feedbackHandler.DeleteFeedback)
	api.Get("/tags", tagHandler.ListTags)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute %s %s: %v", method, path, err)
	}

	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// TestBoardEndpoints walks a board through the HTTP surface.
func TestBoardEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	status, created := doJSON(t, app, "POST", "/api/boards", `{"name":"Mobile"}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d (%v)", status, created)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("Expected created board id")
	}

	status, fetched := doJSON(t, app, "GET", "/api/boards/"+id, "")
	if status != 200 || fetched["name"] != "Mobile" {
		t.Errorf("Expected 200 with name Mobile, got %d %v", status, fetched)
	}

	status, updated := doJSON(t, app, "PATCH", "/api/boards/"+id, `{"description":"apps"}`)
	if status != 200 || updated["description"] != "apps" || updated["name"] != "Mobile" {
		t.Errorf("Expected partial update, got %d %v", status, updated)
	}

	status, _ = doJSON(t, app, "DELETE", "/api/boards/"+id, "")
	if status != 204 {
		t.Errorf("Expected 204 on delete, got %d", status)
	}

	status, _ = doJSON(t, app, "GET", "/api/boards/"+id, "")
	if status != 404 {
		t.Errorf("Expected 404 after delete, got %d", status)
	}
}

// TestValidationErrorEnvelope checks the JSON error shape on a 400.
func TestValidationErrorEnvelope(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/items", `{"title":""}`)
	if status != 400 {
		t.Fatalf("Expected 400, got %d", status)
	}
	if body["ok"] != false || body["type"] != "validation" {
		t.Errorf("Expected error envelope with ok:false type:validation, got %v", body)
	}
	if body["url"] != "/api/items" {
		t.Errorf("Expected url echoed in envelope, got %v", body["url"])
	}
}

// TestNotFoundEnvelope checks the 404 shape for a missing entity.
func TestNotFoundEnvelope(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/items/no-such-id", "")
	if status != 404 {
		t.Fatalf("Expected 404, got %d", status)
	}
	if body["ok"] != false {
		t.Errorf("Expected ok:false in 404 envelope, got %v", body)
	}
}

// TestItemReorderEndpoint drives the batch endpoint end to end.
func TestItemReorderEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	_, first := doJSON(t, app, "POST", "/api/items", `{"title":"first","sortOrder":0}`)
	_, second := doJSON(t, app, "POST", "/api/items", `{"title":"second","sortOrder":1}`)

	body := `{"updates":[
		{"id":"` + first["id"].(string) + `","sortOrder":1},
		{"id":"` + second["id"].(string) + `","sortOrder":0,"status":"DONE"}
	]}`
	status, result := doJSON(t, app, "POST", "/api/items/reorder", body)
	if status != 200 {
		t.Fatalf("Expected 200, got %d (%v)", status, result)
	}
	if result["ok"] != true || result["count"] != float64(2) {
		t.Errorf("Expected ok:true count:2, got %v", result)
	}

	_, reloaded := doJSON(t, app, "GET", "/api/items/"+second["id"].(string), "")
	if reloaded["status"] != "DONE" || reloaded["sortOrder"] != float64(0) {
		t.Errorf("Expected DONE at order 0, got %v", reloaded)
	}

	// Unknown id in the batch aborts with 404.
	bad := `{"updates":[{"id":"missing","sortOrder":0}]}`
	status, _ = doJSON(t, app, "POST", "/api/items/reorder", bad)
	if status != 404 {
		t.Errorf("Expected 404 for unknown id in batch, got %d", status)
	}

	// Empty batch is a validation error.
	status, _ = doJSON(t, app, "POST", "/api/items/reorder", `{"updates":[]}`)
	if status != 400 {
		t.Errorf("Expected 400 for empty batch, got %d", status)
	}
}

// TestFeedbackEndpoints covers create, kind switch, search and delete.
func TestFeedbackEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)

	status, created := doJSON(t, app, "POST", "/api/feedback",
		`{"kind":"PRAISE","content":"love the summaries","source":"STORE"}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d (%v)", status, created)
	}
	id := created["id"].(string)

	status, switched := doJSON(t, app, "PATCH", "/api/feedback/"+id, `{"kind":"FEEDBACK"}`)
	if status != 200 {
		t.Fatalf("Expected 200, got %d (%v)", status, switched)
	}
	if switched["source"] != "" {
		t.Errorf("Expected source cleared on kind switch, got %v", switched["source"])
	}

	req := httptest.NewRequest("GET", "/api/feedback?kind=FEEDBACK&q=summaries", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var list []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 search hit after kind switch, got %d", len(list))
	}

	status, _ = doJSON(t, app, "DELETE", "/api/feedback/"+id, "")
	if status != 204 {
		t.Errorf("Expected 204 on delete, got %d", status)
	}
}

// TestTagsEndpoint checks the seeded palette comes back sorted.
func TestTagsEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/api/tags", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var tags []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(tags) != 8 {
		t.Errorf("Expected 8 default tags, got %d", len(tags))
	}
}
