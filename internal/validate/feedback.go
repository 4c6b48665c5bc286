package validate

import (
	"strings"

	"github.com/030106mia/Roadmap-Feedback/internal/models"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
)

// FeedbackCreateInput is the POST /api/feedback payload. Device/feedbackType/
// todo only apply to FEEDBACK rows, source/language/images only to PRAISE.
type FeedbackCreateInput struct {
	Kind         string                 `json:"kind"`
	UserName     string                 `json:"userName"`
	Email        string                 `json:"email"`
	Device       string                 `json:"device"`
	FeedbackType string                 `json:"feedbackType"`
	Source       string                 `json:"source"`
	Language     string                 `json:"language"`
	Content      string                 `json:"content"`
	Todo         string                 `json:"todo"`
	TodoDone     bool                   `json:"todoDone"`
	Images       types.FlexList[string] `json:"images"`
}

// Validate trims, applies per-kind defaults and checks field rules,
// returning the first violation. A fully empty record is rejected; praise
// may consist of images alone.
func (in *FeedbackCreateInput) Validate() error {
	if in.Kind == "" {
		in.Kind = models.KindFeedback
	}
	if err := checkEnum("kind", in.Kind, kinds); err != nil {
		return err
	}

	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.TrimSpace(in.Email)
	in.Content = strings.TrimSpace(in.Content)
	in.Todo = strings.TrimSpace(in.Todo)

	if err := checkLen("userName", in.UserName, 0, 120); err != nil {
		return err
	}
	if err := checkLen("email", in.Email, 0, 200); err != nil {
		return err
	}
	if err := checkLen("content", in.Content, 0, 20000); err != nil {
		return err
	}
	if err := checkLen("todo", in.Todo, 0, 2000); err != nil {
		return err
	}

	if in.Device == "" {
		in.Device = "-"
	}
	if err := checkEnum("device", in.Device, devices); err != nil {
		return err
	}
	if in.FeedbackType != "" {
		if err := checkEnum("feedbackType", in.FeedbackType, feedbackTypes); err != nil {
			return err
		}
	}
	if in.Source != "" {
		if err := checkEnum("source", in.Source, praiseSources); err != nil {
			return err
		}
	}
	if in.Language != "" {
		if err := checkEnum("language", in.Language, languages); err != nil {
			return err
		}
	}

	if len(in.Images) > MaxImages {
		in.Images = in.Images[:MaxImages]
	}
	for _, u := range in.Images {
		if err := checkLen("images[]", u, 1, 4000); err != nil {
			return err
		}
	}

	hasAny := in.UserName != "" || in.Email != "" || in.Content != "" || in.Todo != "" ||
		(in.Kind == models.KindPraise && len(in.Images) > 0)
	if !hasAny {
		return fail("at least one of userName, email, content or todo is required (praise may attach images only)")
	}
	return nil
}

// FeedbackUpdateInput is the PATCH /api/feedback/:id payload. Only fields
// present in the raw input are applied; an images key triggers a full
// replace of the image set. Kind switches clear the now-irrelevant fields
// even when they are not resent (handled in the service).
type FeedbackUpdateInput struct {
	Kind         types.Optional[string]                 `json:"kind"`
	UserName     types.Optional[string]                 `json:"userName"`
	Email        types.Optional[string]                 `json:"email"`
	Device       types.Optional[string]                 `json:"device"`
	FeedbackType types.Optional[string]                 `json:"feedbackType"`
	Source       types.Optional[string]                 `json:"source"`
	Language     types.Optional[string]                 `json:"language"`
	Content      types.Optional[string]                 `json:"content"`
	Todo         types.Optional[string]                 `json:"todo"`
	TodoDone     types.Optional[bool]                   `json:"todoDone"`
	Images       types.Optional[types.FlexList[string]] `json:"images"`
}

// Validate trims and checks only the provided fields, returning the first
// violation.
func (in *FeedbackUpdateInput) Validate() error {
	if v, ok := in.Kind.Get(); ok {
		if err := checkEnum("kind", v, kinds); err != nil {
			return err
		}
	}
	if v, ok := in.UserName.Get(); ok {
		in.UserName.Value = strings.TrimSpace(v)
		if err := checkLen("userName", in.UserName.Value, 0, 120); err != nil {
			return err
		}
	}
	if v, ok := in.Email.Get(); ok {
		in.Email.Value = strings.TrimSpace(v)
		if err := checkLen("email", in.Email.Value, 0, 200); err != nil {
			return err
		}
	}
	if v, ok := in.Device.Get(); ok && v != "" {
		if err := checkEnum("device", v, devices); err != nil {
			return err
		}
	}
	if v, ok := in.FeedbackType.Get(); ok && v != "" {
		if err := checkEnum("feedbackType", v, feedbackTypes); err != nil {
			return err
		}
	}
	if v, ok := in.Source.Get(); ok && v != "" {
		if err := checkEnum("source", v, praiseSources); err != nil {
			return err
		}
	}
	if v, ok := in.Language.Get(); ok && v != "" {
		if err := checkEnum("language", v, languages); err != nil {
			return err
		}
	}
	if v, ok := in.Content.Get(); ok {
		in.Content.Value = strings.TrimSpace(v)
		if err := checkLen("content", in.Content.Value, 0, 20000); err != nil {
			return err
		}
	}
	if v, ok := in.Todo.Get(); ok {
		in.Todo.Value = strings.TrimSpace(v)
		if err := checkLen("todo", in.Todo.Value, 0, 2000); err != nil {
			return err
		}
	}
	if imgs, ok := in.Images.Get(); ok {
		if len(imgs) > MaxImages {
			in.Images.Value = imgs[:MaxImages]
		}
		for _, u := range in.Images.Value {
			if err := checkLen("images[]", u, 1, 4000); err != nil {
				return err
			}
		}
	}
	return nil
}
