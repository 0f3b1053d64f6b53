package enums

import "fmt"

// ContentType selects what kind of copy the generator produces.
type ContentType string

const (
	ContentTypeSocialPost ContentType = "social-post"
	ContentTypeCaption    ContentType = "caption"
	ContentTypeHashtags   ContentType = "hashtags"
	ContentTypeBlogPost   ContentType = "blog-post"
	ContentTypeEmail      ContentType = "email"
	ContentTypeAdCopy     ContentType = "ad-copy"
)

var validContentTypes = []ContentType{
	ContentTypeSocialPost,
	ContentTypeCaption,
	ContentTypeHashtags,
	ContentTypeBlogPost,
	ContentTypeEmail,
	ContentTypeAdCopy,
}

// IsValid reports whether the value is a known ContentType.
func (c ContentType) IsValid() bool {
	for _, candidate := range validContentTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContentType converts raw input into a ContentType.
func ParseContentType(value string) (ContentType, error) {
	for _, candidate := range validContentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid content type %q", value)
}

// Tone shapes the voice of generated copy.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneHumorous     Tone = "humorous"
	ToneInspiring    Tone = "inspiring"
	ToneUrgent       Tone = "urgent"
)

var validTones = []Tone{
	ToneProfessional,
	ToneCasual,
	ToneFriendly,
	ToneHumorous,
	ToneInspiring,
	ToneUrgent,
}

// IsValid reports whether the value is a known Tone.
func (t Tone) IsValid() bool {
	for _, candidate := range validTones {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTone converts raw input into a Tone.
func ParseTone(value string) (Tone, error) {
	for _, candidate := range validTones {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tone %q", value)
}

// ImageStyle selects the rendering style for generated imagery.
type ImageStyle string

const (
	ImageStylePhotorealistic ImageStyle = "photorealistic"
	ImageStyleIllustration   ImageStyle = "illustration"
	ImageStyleCartoon        ImageStyle = "cartoon"
	ImageStyleAbstract       ImageStyle = "abstract"
	ImageStyleMinimalist     ImageStyle = "minimalist"
	ImageStyleVintage        ImageStyle = "vintage"
)

var validImageStyles = []ImageStyle{
	ImageStylePhotorealistic,
	ImageStyleIllustration,
	ImageStyleCartoon,
	ImageStyleAbstract,
	ImageStyleMinimalist,
	ImageStyleVintage,
}

// IsValid reports whether the value is a known ImageStyle.
func (s ImageStyle) IsValid() bool {
	for _, candidate := range validImageStyles {
		if candidate == s {
			return true
		}
	}
	return false
}
