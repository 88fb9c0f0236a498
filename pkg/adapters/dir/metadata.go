package dir

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Label limits of the select menus topics are listed in.
const (
	maxTitleLength    = 100
	maxSubtitleLength = 100
)

// TopicMetadata is the content of a descriptor file.
// It uses "mapstructure" tags to match the YAML keys authors write.
type TopicMetadata struct {
	Title    string `mapstructure:"title"`
	Subtitle string `mapstructure:"subtitle"`
	Body     string `mapstructure:"body"`

	// Description is the legacy name of Body.
	Description string `mapstructure:"description"`

	Links    []domain.Link `mapstructure:"links"`
	Position *float64      `mapstructure:"position"`
	Image    string        `mapstructure:"image"`
}

// normalize trims author whitespace and folds Description into Body.
func (m *TopicMetadata) normalize() {
	m.Title = strings.TrimSpace(m.Title)
	m.Subtitle = strings.TrimSpace(m.Subtitle)
	m.Image = strings.TrimSpace(m.Image)
	if strings.TrimSpace(m.Body) == "" {
		m.Body = m.Description
	}
	m.Body = strings.TrimRight(strings.TrimLeft(m.Body, "\r\n"), " \t\r\n")
	m.Description = ""
	for i := range m.Links {
		m.Links[i].Name = strings.TrimSpace(m.Links[i].Name)
		m.Links[i].URL = strings.TrimSpace(m.Links[i].URL)
	}
}

// Validate checks the descriptor. Categories may omit the body; leaves may not.
func (m TopicMetadata) Validate(category bool) error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&m.Subtitle, validation.RuneLength(0, maxSubtitleLength)),
		validation.Field(&m.Body, validation.When(!category, validation.Required.Error("is required for leaf topics"))),
		validation.Field(&m.Links, validation.Each(validation.By(validateLink))),
		validation.Field(&m.Image, is.URL),
	)
}

func validateLink(value interface{}) error {
	link, ok := value.(domain.Link)
	if !ok {
		return validation.NewError("validation_link_type", "must be a name/url pair")
	}
	return validation.ValidateStruct(&link,
		validation.Field(&link.Name, validation.Required),
		validation.Field(&link.URL, validation.Required, is.URL),
	)
}

// topic converts validated metadata into a Topic without identity.
func (m TopicMetadata) topic() domain.Topic {
	t := domain.Topic{
		Title:    m.Title,
		Subtitle: m.Subtitle,
		Body:     m.Body,
		Position: m.Position,
		Image:    m.Image,
	}
	if len(m.Links) > 0 {
		t.Links = append([]domain.Link(nil), m.Links...)
	}
	return t
}
