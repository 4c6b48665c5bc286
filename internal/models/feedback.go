package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback kinds.
const (
	KindFeedback = "FEEDBACK"
	KindPraise   = "PRAISE"
)

// UserFeedback is a single feedback or praise submission. Device/FeedbackType/
// Todo only carry meaning for FEEDBACK rows; Source/Language/Images only for
// PRAISE rows. The irrelevant columns hold their neutral value.
type UserFeedback struct {
	ID           string          `gorm:"type:char(36);primaryKey" json:"id"`
	Kind         string          `gorm:"size:16;not null;default:FEEDBACK;index" json:"kind"`
	UserName     string          `gorm:"size:120" json:"userName"`
	Email        string          `gorm:"size:200" json:"email"`
	Device       string          `gorm:"size:16;not null;default:-" json:"device"`
	FeedbackType string          `gorm:"size:16" json:"feedbackType"`
	Source       string          `gorm:"size:16" json:"source"`
	Language     string          `gorm:"size:16" json:"language"`
	Content      string          `gorm:"size:20000" json:"content"`
	Todo         string          `gorm:"size:2000" json:"todo"`
	TodoDone     bool            `gorm:"not null;default:false" json:"todoDone"`
	SortOrder    int             `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	Images       []FeedbackImage `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"images"`
}

// FeedbackImage is owned exclusively by one UserFeedback row.
type FeedbackImage struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	FeedbackID string    `gorm:"type:char(36);not null;index" json:"feedbackId"`
	URL        string    `gorm:"size:4000;not null" json:"url"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName overrides the table name for UserFeedback
func (UserFeedback) TableName() string {
	return "user_feedbacks"
}

// TableName overrides the table name for FeedbackImage
func (FeedbackImage) TableName() string {
	return "feedback_images"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (f *UserFeedback) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (f *FeedbackImage) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// TodoEntry is one element of the serialized to-do list carried in
// UserFeedback.Todo. Done is toggleable without touching Text.
type TodoEntry struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// ParseTodoList decodes the serialized to-do column. A plain (non-JSON)
// legacy string becomes a single entry whose Done mirrors the legacy
// TodoDone flag semantics at the call site.
func ParseTodoList(raw string) []TodoEntry {
	if raw == "" {
		return nil
	}
	var entries []TodoEntry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries
	}
	return []TodoEntry{{Text: raw}}
}

// SerializeTodoList encodes a to-do list back into its column form.
// An empty list serializes to the empty string, not "[]".
func SerializeTodoList(entries []TodoEntry) string {
	if len(entries) == 0 {
		return ""
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return ""
	}
	return string(raw)
}
