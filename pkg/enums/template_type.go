package enums

import "fmt"

// TemplateType categorizes a reusable content blueprint.
type TemplateType string

const (
	TemplateTypePost  TemplateType = "post"
	TemplateTypeStory TemplateType = "story"
	TemplateTypeAd    TemplateType = "ad"
)

var validTemplateTypes = []TemplateType{
	TemplateTypePost,
	TemplateTypeStory,
	TemplateTypeAd,
}

// IsValid reports whether the value is a known TemplateType.
func (t TemplateType) IsValid() bool {
	for _, candidate := range validTemplateTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTemplateType converts raw input into a TemplateType.
func ParseTemplateType(value string) (TemplateType, error) {
	for _, candidate := range validTemplateTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid template type %q", value)
}
