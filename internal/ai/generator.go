// Package ai produces templated marketing copy, image URLs, and document
// summaries. The templated generator stands in for a real inference backend;
// everything upstream depends only on the Generator interface so one can be
// swapped in without touching callers.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// GenerateContentDTO holds the generation parameters. Each parameter
// independently shapes the output.
type GenerateContentDTO struct {
	Prompt   string            `json:"prompt" validate:"required,min=1,max=2000"`
	Type     enums.ContentType `json:"type" validate:"required"`
	Platform enums.Platform    `json:"platform" validate:"omitempty"`
	Tone     enums.Tone        `json:"tone" validate:"omitempty"`
}

// GenerateImageDTO holds the image generation parameters.
type GenerateImageDTO struct {
	Prompt string           `json:"prompt" validate:"required,min=1,max=2000"`
	Style  enums.ImageStyle `json:"style" validate:"omitempty"`
}

// EnhanceContentDTO carries an existing draft plus optional free-form
// instructions on how to rework it.
type EnhanceContentDTO struct {
	Content      string `json:"content" validate:"required,min=1,max=10000"`
	Instructions string `json:"instructions" validate:"omitempty,max=2000"`
}

// EnhancedContent is a reworked draft.
type EnhancedContent struct {
	Content      string `json:"content"`
	Original     string `json:"original"`
	Instructions string `json:"instructions,omitempty"`
}

// GeneratedContent is one piece of generated copy.
type GeneratedContent struct {
	Content  string            `json:"content"`
	Type     enums.ContentType `json:"type"`
	Platform enums.Platform    `json:"platform,omitempty"`
	Tone     enums.Tone        `json:"tone,omitempty"`
}

// GeneratedImage points at one generated image.
type GeneratedImage struct {
	URL    string           `json:"url"`
	Prompt string           `json:"prompt"`
	Style  enums.ImageStyle `json:"style,omitempty"`
}

// Generator is the content generation surface.
type Generator interface {
	GenerateContent(ctx context.Context, dto GenerateContentDTO) (*GeneratedContent, error)
	GenerateImage(ctx context.Context, dto GenerateImageDTO) (*GeneratedImage, error)
	EnhanceContent(ctx context.Context, dto EnhanceContentDTO) (*EnhancedContent, error)
	SummarizeDocument(ctx context.Context, name, content string) string
}

type templatedGenerator struct {
	cfg  config.AIConfig
	seed func() int64
}

// NewGenerator returns the templated generator.
func NewGenerator(cfg config.AIConfig) Generator {
	return &templatedGenerator{
		cfg:  cfg,
		seed: func() int64 { return time.Now().UnixNano() },
	}
}

func (g *templatedGenerator) GenerateContent(ctx context.Context, dto GenerateContentDTO) (*GeneratedContent, error) {
	prompt := strings.TrimSpace(dto.Prompt)
	if prompt == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prompt is required")
	}
	if !dto.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid content type")
	}
	if dto.Platform != "" && !dto.Platform.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform")
	}
	if dto.Tone != "" && !dto.Tone.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid tone")
	}

	platform := dto.Platform
	if platform == "" {
		platform = enums.PlatformInstagram
	}
	tone := dto.Tone
	if tone == "" {
		tone = enums.ToneProfessional
	}

	var content string
	switch dto.Type {
	case enums.ContentTypeSocialPost:
		content = socialPost(prompt, platform, tone)
	case enums.ContentTypeCaption:
		content = fmt.Sprintf(
			"Caption for your post: %q\n\nThis keeps a %s tone tuned to your %s audience.\n\n#Trending #%s",
			prompt, tone, platform, titleCase(string(platform)),
		)
	case enums.ContentTypeHashtags:
		content = hashtags(prompt)
	case enums.ContentTypeBlogPost:
		content = blogPost(prompt)
	case enums.ContentTypeEmail:
		content = email(prompt)
	case enums.ContentTypeAdCopy:
		content = adCopy(prompt, tone)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid content type")
	}

	return &GeneratedContent{
		Content:  content,
		Type:     dto.Type,
		Platform: dto.Platform,
		Tone:     dto.Tone,
	}, nil
}

func (g *templatedGenerator) GenerateImage(ctx context.Context, dto GenerateImageDTO) (*GeneratedImage, error) {
	prompt := strings.TrimSpace(dto.Prompt)
	if prompt == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "prompt is required")
	}
	if dto.Style != "" && !dto.Style.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid image style")
	}

	size := g.cfg.ImageSize
	if size <= 0 {
		size = 512
	}
	base := strings.TrimRight(g.cfg.ImageBaseURL, "/")

	return &GeneratedImage{
		URL:    fmt.Sprintf("%s/%d/%d?random=%d", base, size, size, g.seed()),
		Prompt: prompt,
		Style:  dto.Style,
	}, nil
}

// EnhanceContent reworks an existing draft. Line breaks and spacing are
// normalized, a closing call to action is appended when the draft lacks one,
// and the caller's instructions are echoed so the client can show what was
// applied.
func (g *templatedGenerator) EnhanceContent(ctx context.Context, dto EnhanceContentDTO) (*EnhancedContent, error) {
	original := strings.TrimSpace(dto.Content)
	if original == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	lines := strings.Split(original, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	enhanced := strings.Join(cleaned, "\n\n")

	if !strings.Contains(enhanced, "?") && !strings.Contains(enhanced, "#") {
		enhanced += "\n\nWhat do you think? Share your take below."
	}

	instructions := strings.TrimSpace(dto.Instructions)
	if instructions != "" {
		enhanced = fmt.Sprintf("%s\n\n(%s)", enhanced, instructions)
	}

	return &EnhancedContent{
		Content:      enhanced,
		Original:     original,
		Instructions: instructions,
	}, nil
}

// SummarizeDocument condenses inline document text to its leading sentences.
func (g *templatedGenerator) SummarizeDocument(ctx context.Context, name, content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	const maxLen = 280
	summary := content
	if idx := strings.Index(summary, "\n"); idx > 0 {
		summary = summary[:idx]
	}
	if len(summary) > maxLen {
		cut := strings.LastIndex(summary[:maxLen], " ")
		if cut <= 0 {
			cut = maxLen
		}
		summary = summary[:cut] + "…"
	}
	return fmt.Sprintf("%s: %s", name, summary)
}

func socialPost(prompt string, platform enums.Platform, tone enums.Tone) string {
	opener := map[enums.Tone]string{
		enums.ToneProfessional: "Professional insight:",
		enums.ToneCasual:       "Hey, quick one:",
		enums.ToneFriendly:     "We have something to share!",
		enums.ToneHumorous:     "Stop scrolling, this is good:",
		enums.ToneInspiring:    "Big things start small.",
		enums.ToneUrgent:       "Don't wait on this:",
	}[tone]

	switch platform {
	case enums.PlatformLinkedIn:
		return fmt.Sprintf(
			"%s %s\n\nContent creation keeps getting harder while mattering more. Three ways teams are adapting:\n\n"+
				"1. Data-driven insight into what resonates\n2. Weeks of content generated in minutes\n3. Messages tailored per platform and audience\n\n"+
				"What has your experience been?\n\n#ContentMarketing #DigitalTransformation",
			opener, prompt,
		)
	case enums.PlatformTwitter:
		return fmt.Sprintf(
			"%s %s\n\nFaster creation, better engagement, a consistent voice, and more time for strategy.\n\n#ContentStrategy #SocialMedia",
			opener, prompt,
		)
	case enums.PlatformFacebook:
		return fmt.Sprintf(
			"%s %s\n\nGreat content shouldn't be hard to create. Generate engaging posts in seconds, lift performance, and save time for the work that matters.\n\nWhat would you create first? Tell us in the comments!",
			opener, prompt,
		)
	default:
		return fmt.Sprintf(
			"%s %s\n\nReady to upgrade your content workflow?\n\n• Hours saved every week\n• Higher engagement\n• A steady stream of ideas\n\n#ContentCreation #SocialMediaMarketing",
			opener, prompt,
		)
	}
}

func hashtags(prompt string) string {
	core := "#" + strings.ReplaceAll(strings.TrimSpace(prompt), " ", "")
	return core + " #SocialMedia #ContentCreation #DigitalMarketing #Trending #Engagement #ContentStrategy #BrandBuilding #ContentCreator"
}

func blogPost(prompt string) string {
	return fmt.Sprintf(
		"# %s\n\n## Introduction\n\n%s matters more than ever in a crowded digital landscape. This guide covers the essentials.\n\n"+
			"## Key Points\n\n### 1. Understand the basics\n### 2. Apply proven practices\n### 3. Layer in advanced strategies\n\n"+
			"## Conclusion\n\n%s can transform your approach. Start with one strategy and measure the difference.",
		prompt, prompt, prompt,
	)
}

func email(prompt string) string {
	return fmt.Sprintf(
		"Subject: %s\n\nHi [Name],\n\nI wanted to reach out because %s could be a real fit for you:\n\n"+
			"• Immediate impact\n• Easy to implement\n• Proven track record\n\nFree for a quick call this week?\n\nBest regards,\n[Your Name]",
		prompt, strings.ToLower(prompt),
	)
}

func adCopy(prompt string, tone enums.Tone) string {
	return fmt.Sprintf(
		"%s\n\nTransform your results in 30 days.\n\n✅ Proven with thousands of teams\n✅ Step-by-step rollout\n✅ Measurable from week one\n\nWritten in a %s voice. Act today.",
		prompt, tone,
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
