package enums

import "fmt"

// CalendarEventType distinguishes what a calendar entry represents.
type CalendarEventType string

const (
	CalendarEventTypePost     CalendarEventType = "post"
	CalendarEventTypeCampaign CalendarEventType = "campaign"
	CalendarEventTypeMeeting  CalendarEventType = "meeting"
)

var validCalendarEventTypes = []CalendarEventType{
	CalendarEventTypePost,
	CalendarEventTypeCampaign,
	CalendarEventTypeMeeting,
}

// IsValid reports whether the value is a known CalendarEventType.
func (c CalendarEventType) IsValid() bool {
	for _, candidate := range validCalendarEventTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCalendarEventType converts raw input into a CalendarEventType.
func ParseCalendarEventType(value string) (CalendarEventType, error) {
	for _, candidate := range validCalendarEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid calendar event type %q", value)
}
