// Package feedback builds the feedback webhook envelope and submits it.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type classifies a feedback submission.
type Type string

const (
	TypeBug     Type = "bug"
	TypeFeature Type = "feature"
	TypePraise  Type = "praise"
	TypeOther   Type = "other"
)

// EmbedColor is the accent colour of the posted embed.
const EmbedColor = 8660162

// AnonymousName is used when the submitter leaves the name blank.
const AnonymousName = "Anonymous"

// TimestampLayout formats the submission time field.
const TimestampLayout = "02.01.2006, 15:04:05"

var (
	// ErrNoWebhook is returned when no webhook URL is configured.
	ErrNoWebhook = errors.New("webhook URL missing from configuration")
	// ErrEmptyMessage is returned when the message is blank.
	ErrEmptyMessage = errors.New("feedback message is empty")
	// ErrUnknownType is returned for a type outside Types().
	ErrUnknownType = errors.New("unknown feedback type")
)

// Types returns the feedback types in selector order.
func Types() []Type {
	return []Type{TypeBug, TypeFeature, TypePraise, TypeOther}
}

// Title is the embed title for the type.
func (t Type) Title() string {
	switch t {
	case TypeBug:
		return "🐛 Bug Report"
	case TypeFeature:
		return "💡 Feature Request"
	case TypePraise:
		return "❤️ Praise"
	case TypeOther:
		return "💬 Other"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of Types().
func (t Type) Valid() bool {
	switch t {
	case TypeBug, TypeFeature, TypePraise, TypeOther:
		return true
	}
	return false
}

// Form is the data a user enters in the feedback form.
type Form struct {
	Name    string
	Type    Type
	Message string
}

// Validate checks the form can be submitted.
func (f Form) Validate() error {
	if !f.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, f.Type)
	}
	if strings.TrimSpace(f.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// Sender returns the display name, defaulting to AnonymousName.
func (f Form) Sender() string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}
	return AnonymousName
}

// Payload is the JSON envelope posted to the webhook.
type Payload struct {
	Embeds []Embed `json:"embeds"`
}

// Embed is a single rich message in the payload.
type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields"`
	Footer      Footer  `json:"footer"`
}

// Field is a name/value pair shown in the embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer is the embed footer.
type Footer struct {
	Text string `json:"text"`
}

// BuildPayload validates form and wraps it in the webhook envelope.
func BuildPayload(form Form, footer string, at time.Time) (Payload, error) {
	if err := form.Validate(); err != nil {
		return Payload{}, err
	}
	return Payload{Embeds: []Embed{{
		Title:       form.Type.Title(),
		Description: form.Message,
		Color:       EmbedColor,
		Fields: []Field{
			{Name: "From", Value: form.Sender(), Inline: true},
			{Name: "Time", Value: at.Format(TimestampLayout), Inline: true},
		},
		Footer: Footer{Text: footer},
	}}}, nil
}
