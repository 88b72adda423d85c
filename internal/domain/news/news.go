// Package news holds the News entity.
package news

import (
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

const maxTitleLength = 255

// News is an article shown to residents.
type News struct {
	ID          int64
	Title       string
	Description string
	Text        string
	PhotoURL    string
	Source      string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the News entity.
func (n *News) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(n.Title) == "" {
		fields["title"] = domain.MsgRequired
	} else if len(n.Title) > maxTitleLength {
		fields["title"] = "must be at most 255 characters"
	}
	if strings.TrimSpace(n.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if n.PhotoURL != "" && !isAbsoluteURL(n.PhotoURL) {
		fields["photo_url"] = "must be an absolute URL"
	}

	return domain.NewValidationError(fields)
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Text        *string
	PhotoURL    *string
	Source      *string
}

// Validate checks that any provided fields have valid values.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			fields["title"] = domain.MsgMustNotEmpty
		} else if len(*p.Title) > maxTitleLength {
			fields["title"] = "must be at most 255 characters"
		}
	}
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		fields["text"] = domain.MsgMustNotEmpty
	}
	if p.PhotoURL != nil && *p.PhotoURL != "" && !isAbsoluteURL(*p.PhotoURL) {
		fields["photo_url"] = "must be an absolute URL"
	}

	return domain.NewValidationError(fields)
}

// Apply copies the non-nil patch fields onto n.
func (p *Patch) Apply(n *News) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Text != nil {
		n.Text = *p.Text
	}
	if p.PhotoURL != nil {
		n.PhotoURL = *p.PhotoURL
	}
	if p.Source != nil {
		n.Source = *p.Source
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
