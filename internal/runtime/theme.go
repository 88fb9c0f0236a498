package runtime

// Theme carries the branding of rendered views.
type Theme struct {
	Title       string `mapstructure:"title"`
	Welcome     string `mapstructure:"welcome"`
	Color       int    `mapstructure:"color"`
	Placeholder string `mapstructure:"placeholder"`
}

// DefaultTheme returns the stock branding.
func DefaultTheme() Theme {
	return Theme{
		Title: "Help Center",
		Welcome: "Welcome to the Help Center!\n\n" +
			"This is an **interactive FAQ** where you can find answers to common questions. " +
			"Use the select menu below to navigate. You can come back to this message at any point by clicking the \"Home\" button.",
		Color:       0x478fce,
		Placeholder: "Select a topic ...",
	}
}

// merge fills empty fields of t from the defaults.
func (t Theme) merge() Theme {
	def := DefaultTheme()
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Welcome == "" {
		t.Welcome = def.Welcome
	}
	if t.Color == 0 {
		t.Color = def.Color
	}
	if t.Placeholder == "" {
		t.Placeholder = def.Placeholder
	}
	return t
}
