package validate

import (
	"net/url"
	"strings"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
)

// ItemImageInput is an inline image attached on item creation.
type ItemImageInput struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

func (in *ItemImageInput) validate() error {
	if err := checkLen("image.url", in.URL, 1, 4000); err != nil {
		return err
	}
	if u, err := url.Parse(in.URL); err != nil || u.Scheme == "" {
		return fail("image.url must be a valid URL")
	}
	in.Caption = strings.TrimSpace(in.Caption)
	return checkLen("image.caption", in.Caption, 0, 2000)
}

// ItemCreateInput is the POST /api/items payload. Tags travel by name; the
// service upserts and links them.
type ItemCreateInput struct {
	BoardID     string                 `json:"boardId"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Source      string                 `json:"source"`
	JiraKey     string                 `json:"jiraKey"`
	Priority    string                 `json:"priority"`
	Status      string                 `json:"status"`
	Tags        types.FlexList[string] `json:"tags"`
	StartDate   types.Optional[string] `json:"startDate"`
	EndDate     types.Optional[string] `json:"endDate"`
	SortOrder   types.FlexInt          `json:"sortOrder"`
	Image       *ItemImageInput        `json:"image"`
}

// Validate trims, applies defaults (priority P2, status PLANNED->BACKLOG)
// and checks field rules, returning the first violation.
func (in *ItemCreateInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Source = strings.TrimSpace(in.Source)
	in.JiraKey = strings.TrimSpace(in.JiraKey)

	if err := checkLen("title", in.Title, 1, 120); err != nil {
		return err
	}
	if err := checkLen("description", in.Description, 0, 20000); err != nil {
		return err
	}
	if err := checkLen("source", in.Source, 0, 2000); err != nil {
		return err
	}
	if err := checkLen("jiraKey", in.JiraKey, 0, 50); err != nil {
		return err
	}

	if in.Priority == "" {
		in.Priority = models.PriorityP2
	}
	if err := checkEnum("priority", in.Priority, priorities); err != nil {
		return err
	}

	if in.Status == "" {
		in.Status = models.StatusLegacyPlanned
	}
	if err := checkEnum("status", in.Status, statuses); err != nil {
		return err
	}
	in.Status = models.NormalizeStatus(in.Status)

	in.Tags = NormalizeTagNames(in.Tags.Slice())

	for _, field := range []struct {
		name string
		opt  *types.Optional[string]
	}{{"startDate", &in.StartDate}, {"endDate", &in.EndDate}} {
		if v, ok := field.opt.Get(); ok && v != "" {
			if _, err := ParseDate(v); err != nil {
				return err
			}
		}
	}

	if in.Image != nil {
		if err := in.Image.validate(); err != nil {
			return err
		}
	}
	return nil
}

// ItemUpdateInput is the PATCH /api/items/:id payload. Only fields present
// in the raw input are applied; a tags key triggers a full replace of the
// item's tag set.
type ItemUpdateInput struct {
	Title       types.Optional[string]                 `json:"title"`
	Description types.Optional[string]                 `json:"description"`
	Source      types.Optional[string]                 `json:"source"`
	JiraKey     types.Optional[string]                 `json:"jiraKey"`
	Priority    types.Optional[string]                 `json:"priority"`
	Status      types.Optional[string]                 `json:"status"`
	Tags        types.Optional[types.FlexList[string]] `json:"tags"`
	StartDate   types.Optional[string]                 `json:"startDate"`
	EndDate     types.Optional[string]                 `json:"endDate"`
	SortOrder   types.Optional[types.FlexInt]          `json:"sortOrder"`
}

// Validate trims and checks only the provided fields, returning the first
// violation. Status keeps its legacy alias tolerance.
func (in *ItemUpdateInput) Validate() error {
	if v, ok := in.Title.Get(); ok {
		in.Title.Value = strings.TrimSpace(v)
		if err := checkLen("title", in.Title.Value, 1, 120); err != nil {
			return err
		}
	}
	if v, ok := in.Description.Get(); ok {
		in.Description.Value = strings.TrimSpace(v)
		if err := checkLen("description", in.Description.Value, 0, 20000); err != nil {
			return err
		}
	}
	if v, ok := in.Source.Get(); ok {
		in.Source.Value = strings.TrimSpace(v)
		if err := checkLen("source", in.Source.Value, 0, 2000); err != nil {
			return err
		}
	}
	if v, ok := in.JiraKey.Get(); ok {
		in.JiraKey.Value = strings.TrimSpace(v)
		if err := checkLen("jiraKey", in.JiraKey.Value, 0, 50); err != nil {
			return err
		}
	}
	if v, ok := in.Priority.Get(); ok {
		if err := checkEnum("priority", v, priorities); err != nil {
			return err
		}
	}
	if v, ok := in.Status.Get(); ok {
		if err := checkEnum("status", v, statuses); err != nil {
			return err
		}
		in.Status.Value = models.NormalizeStatus(v)
	}
	if tags, ok := in.Tags.Get(); ok {
		in.Tags.Value = NormalizeTagNames(tags.Slice())
	}
	for _, field := range []struct {
		name string
		opt  *types.Optional[string]
	}{{"startDate", &in.StartDate}, {"endDate", &in.EndDate}} {
		if v, ok := field.opt.Get(); ok && v != "" {
			if _, err := ParseDate(v); err != nil {
				return err
			}
		}
	}
	return nil
}
