package enums

import "fmt"

// DocumentType labels uploaded reference material used to ground AI generation.
type DocumentType string

const (
	DocumentTypeBrandGuide     DocumentType = "brand_guide"
	DocumentTypeBusinessPlan   DocumentType = "business_plan"
	DocumentTypeMarketResearch DocumentType = "market_research"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeBrandGuide,
	DocumentTypeBusinessPlan,
	DocumentTypeMarketResearch,
}

// IsValid reports whether the value is a known DocumentType.
func (d DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentType converts raw input into a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
