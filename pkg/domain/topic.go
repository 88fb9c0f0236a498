package domain

// Link is an external reference rendered as a URL button.
type Link struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	URL  string `json:"url" yaml:"url" mapstructure:"url"`
}

// Topic is a node in the help forest.
// A Topic without CategoryID is a root; a Topic that other topics point at is a category.
type Topic struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId,omitempty"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Body     string `json:"body,omitempty"`
	Links    []Link `json:"links,omitempty"`

	// Position is the explicit sort key among siblings. Nil sorts as 0.
	Position *float64 `json:"position,omitempty"`
	Image    string   `json:"image,omitempty"`
}

// IsRoot reports whether the topic sits at the top of the forest.
func (t Topic) IsRoot() bool {
	return t.CategoryID == ""
}

// SortKey returns the explicit position, or 0 when none was declared.
func (t Topic) SortKey() float64 {
	if t.Position == nil {
		return 0
	}
	return *t.Position
}

// Clone returns a copy that shares no mutable memory with t.
func (t Topic) Clone() Topic {
	c := t
	if t.Links != nil {
		c.Links = make([]Link, len(t.Links))
		copy(c.Links, t.Links)
	}
	if t.Position != nil {
		p := *t.Position
		c.Position = &p
	}
	return c
}
