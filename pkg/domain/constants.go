package domain

// Descriptor file conventions shared by the loader and the validator.
const (
	// CategoryDescriptor is the reserved file name that turns a directory into a category.
	CategoryDescriptor = "_category.yaml"
	// CategoryDescriptorAlt is accepted for authors who prefer the short extension.
	CategoryDescriptorAlt = "_category.yml"
)

// IsCategoryDescriptor reports whether name is the reserved category file name.
func IsCategoryDescriptor(name string) bool {
	return name == CategoryDescriptor || name == CategoryDescriptorAlt
}
