package dsl

import "github.com/aretw0/helpcenter/pkg/domain"

// TopicBuilder provides a fluent API for configuring a topic.
type TopicBuilder struct {
	topic   domain.Topic
	builder *Builder
}

// Title sets the display title. It defaults to the topic id.
func (t *TopicBuilder) Title(title string) *TopicBuilder {
	t.topic.Title = title
	return t
}

// Subtitle sets the short description shown in the topic menu.
func (t *TopicBuilder) Subtitle(subtitle string) *TopicBuilder {
	t.topic.Subtitle = subtitle
	return t
}

// Body sets the markdown body shown when the topic is opened.
func (t *TopicBuilder) Body(body string) *TopicBuilder {
	t.topic.Body = body
	return t
}

// Under places the topic inside the category with the given id.
func (t *TopicBuilder) Under(categoryID string) *TopicBuilder {
	t.topic.CategoryID = categoryID
	return t
}

// Position sets the explicit sort key among siblings.
func (t *TopicBuilder) Position(p float64) *TopicBuilder {
	t.topic.Position = &p
	return t
}

// Image attaches an image URL.
func (t *TopicBuilder) Image(url string) *TopicBuilder {
	t.topic.Image = url
	return t
}

// Link adds an external link button.
func (t *TopicBuilder) Link(name, url string) *TopicBuilder {
	t.topic.Links = append(t.topic.Links, domain.Link{Name: name, URL: url})
	return t
}

// Topic starts a child of this topic, making this topic a category.
func (t *TopicBuilder) Topic(id string) *TopicBuilder {
	return t.builder.Add(id).Under(t.topic.ID)
}

// Build returns a copy of the underlying domain.Topic.
func (t *TopicBuilder) Build() domain.Topic {
	return t.topic.Clone()
}
