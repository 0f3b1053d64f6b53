package enums

import "fmt"

// PostType distinguishes the media shape of a post.
type PostType string

const (
	PostTypeText     PostType = "text"
	PostTypeImage    PostType = "image"
	PostTypeVideo    PostType = "video"
	PostTypeCarousel PostType = "carousel"
)

var validPostTypes = []PostType{
	PostTypeText,
	PostTypeImage,
	PostTypeVideo,
	PostTypeCarousel,
}

// IsValid reports whether the value is a known PostType.
func (p PostType) IsValid() bool {
	for _, candidate := range validPostTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePostType converts raw input into a PostType.
func ParsePostType(value string) (PostType, error) {
	for _, candidate := range validPostTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid post type %q", value)
}

// PostStatus tracks a post through its publishing lifecycle.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

var validPostStatuses = []PostStatus{
	PostStatusDraft,
	PostStatusScheduled,
	PostStatusPublished,
	PostStatusFailed,
}

// String implements fmt.Stringer.
func (p PostStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PostStatus.
func (p PostStatus) IsValid() bool {
	for _, candidate := range validPostStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePostStatus converts raw input into a PostStatus.
func ParsePostStatus(value string) (PostStatus, error) {
	for _, candidate := range validPostStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid post status %q", value)
}
