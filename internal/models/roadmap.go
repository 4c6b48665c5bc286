package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roadmap item priorities.
const (
	PriorityP0 = "P0"
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
)

// Roadmap item statuses. PLANNED is a legacy input alias that is normalized
// to BACKLOG before anything is persisted.
const (
	StatusBacklog       = "BACKLOG"
	StatusNextUp        = "NEXT_UP"
	StatusInProgress    = "IN_PROGRESS"
	StatusDone          = "DONE"
	StatusLegacyPlanned = "PLANNED"
)

// DefaultBoardName is the single aggregate board every installation converges
// on after the legacy multi-board data is migrated.
const DefaultBoardName = "All"

// Board is a legacy grouping container for roadmap items. Name is
// intentionally NOT unique: the migration routine depends on
// find-then-create working against old databases.
type Board struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:80;not null" json:"name"`
	Description string    `gorm:"size:2000" json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Tag is a free-form label attachable to roadmap items, and the migration
// target for a legacy board identity.
type Tag struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:40;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoadmapItem is a prioritized roadmap entry owning images and tag links.
type RoadmapItem struct {
	ID          string      `gorm:"type:char(36);primaryKey" json:"id"`
	BoardID     string      `gorm:"type:char(36);not null;index" json:"boardId"`
	Title       string      `gorm:"size:120;not null" json:"title"`
	Description string      `gorm:"size:20000" json:"description"`
	Source      string      `gorm:"size:2000" json:"source"`
	JiraKey     string      `gorm:"size:50" json:"jiraKey"`
	Priority    string      `gorm:"size:8;not null;default:P2" json:"priority"`
	Status      string      `gorm:"size:16;not null;default:BACKLOG" json:"status"`
	StartDate   *time.Time  `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	SortOrder   int         `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Images      []ItemImage `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"images"`
	Tags        []Tag       `gorm:"many2many:item_tags;joinForeignKey:item_id;joinReferences:tag_id" json:"tags"`
}

// ItemTag is the item/tag join row, composite-unique on (item_id, tag_id).
type ItemTag struct {
	ItemID string `gorm:"type:char(36);primaryKey" json:"itemId"`
	TagID  string `gorm:"type:char(36);primaryKey" json:"tagId"`
}

// ItemImage is owned exclusively by one roadmap item.
type ItemImage struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	ItemID    string    `gorm:"type:char(36);not null;index" json:"itemId"`
	URL       string    `gorm:"size:4000;not null" json:"url"`
	Caption   string    `gorm:"size:2000" json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name for Board
func (Board) TableName() string {
	return "boards"
}

// TableName overrides the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// TableName overrides the table name for RoadmapItem
func (RoadmapItem) TableName() string {
	return "roadmap_items"
}

// TableName overrides the table name for ItemTag
func (ItemTag) TableName() string {
	return "item_tags"
}

// TableName overrides the table name for ItemImage
func (ItemImage) TableName() string {
	return "item_images"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (b *Board) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (t *Tag) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (i *RoadmapItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (i *ItemImage) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// NormalizeStatus maps the legacy PLANNED alias to BACKLOG.
func NormalizeStatus(s string) string {
	if s == StatusLegacyPlanned {
		return StatusBacklog
	}
	return s
}
