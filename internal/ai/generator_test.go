package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

func newGenerator() Generator {
	return NewGenerator(config.AIConfig{ImageBaseURL: "https://picsum.photos", ImageSize: 512})
}

func TestGenerateContentEmbedsPrompt(t *testing.T) {
	gen := newGenerator()

	for _, contentType := range []enums.ContentType{
		enums.ContentTypeSocialPost,
		enums.ContentTypeCaption,
		enums.ContentTypeHashtags,
		enums.ContentTypeBlogPost,
		enums.ContentTypeEmail,
		enums.ContentTypeAdCopy,
	} {
		out, err := gen.GenerateContent(context.Background(), GenerateContentDTO{
			Prompt: "Spring launch",
			Type:   contentType,
		})
		if err != nil {
			t.Fatalf("%s: GenerateContent: %v", contentType, err)
		}
		if !strings.Contains(out.Content, "Spring launch") && !strings.Contains(out.Content, "SpringLaunch") &&
			!strings.Contains(out.Content, "spring launch") && !strings.Contains(out.Content, "Springlaunch") {
			t.Fatalf("%s: prompt not embedded in output:\n%s", contentType, out.Content)
		}
	}
}

func TestGenerateContentVariesByPlatform(t *testing.T) {
	gen := newGenerator()

	outputs := map[string]bool{}
	for _, platform := range []enums.Platform{
		enums.PlatformInstagram,
		enums.PlatformTwitter,
		enums.PlatformLinkedIn,
		enums.PlatformFacebook,
	} {
		out, err := gen.GenerateContent(context.Background(), GenerateContentDTO{
			Prompt:   "New feature",
			Type:     enums.ContentTypeSocialPost,
			Platform: platform,
		})
		if err != nil {
			t.Fatalf("GenerateContent(%s): %v", platform, err)
		}
		outputs[out.Content] = true
	}
	if len(outputs) != 4 {
		t.Fatalf("expected 4 distinct platform outputs, got %d", len(outputs))
	}
}

func TestGenerateContentVariesByTone(t *testing.T) {
	gen := newGenerator()

	casual, err := gen.GenerateContent(context.Background(), GenerateContentDTO{
		Prompt: "x", Type: enums.ContentTypeSocialPost, Tone: enums.ToneCasual,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	urgent, err := gen.GenerateContent(context.Background(), GenerateContentDTO{
		Prompt: "x", Type: enums.ContentTypeSocialPost, Tone: enums.ToneUrgent,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if casual.Content == urgent.Content {
		t.Fatal("tone did not shape the output")
	}
}

func TestGenerateContentRejectsUnknownType(t *testing.T) {
	gen := newGenerator()

	_, err := gen.GenerateContent(context.Background(), GenerateContentDTO{
		Prompt: "x",
		Type:   enums.ContentType("poem"),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestGenerateContentRequiresPrompt(t *testing.T) {
	gen := newGenerator()

	_, err := gen.GenerateContent(context.Background(), GenerateContentDTO{
		Prompt: "   ",
		Type:   enums.ContentTypeCaption,
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestGenerateImageUsesConfiguredBase(t *testing.T) {
	gen := newGenerator()

	img, err := gen.GenerateImage(context.Background(), GenerateImageDTO{Prompt: "sunset over water"})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if !strings.HasPrefix(img.URL, "https://picsum.photos/512/512?random=") {
		t.Fatalf("unexpected image url %q", img.URL)
	}
	if img.Prompt != "sunset over water" {
		t.Fatalf("prompt not echoed: %q", img.Prompt)
	}
}

func TestSummarizeDocumentTruncates(t *testing.T) {
	gen := newGenerator()

	long := strings.Repeat("brand voice guidance ", 30)
	summary := gen.SummarizeDocument(context.Background(), "Brand guide", long)
	if summary == "" {
		t.Fatal("expected a summary")
	}
	if !strings.HasPrefix(summary, "Brand guide: ") {
		t.Fatalf("summary missing name prefix: %q", summary)
	}
	if len(summary) > 320 {
		t.Fatalf("summary not truncated: %d chars", len(summary))
	}
}

func TestSummarizeDocumentEmptyContent(t *testing.T) {
	gen := newGenerator()
	if got := gen.SummarizeDocument(context.Background(), "doc", "   "); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}

func TestEnhanceContentNormalizesAndAppendsCTA(t *testing.T) {
	gen := newGenerator()

	out, err := gen.EnhanceContent(context.Background(), EnhanceContentDTO{
		Content: "Our   launch is   coming.\n\n\nStay tuned.",
	})
	if err != nil {
		t.Fatalf("EnhanceContent: %v", err)
	}
	if !strings.Contains(out.Content, "Our launch is coming.") {
		t.Fatalf("whitespace not normalized: %q", out.Content)
	}
	if !strings.Contains(out.Content, "What do you think?") {
		t.Fatalf("missing call to action: %q", out.Content)
	}
	if out.Original != "Our   launch is   coming.\n\n\nStay tuned." {
		t.Fatalf("original not preserved: %q", out.Original)
	}
}

func TestEnhanceContentEchoesInstructions(t *testing.T) {
	gen := newGenerator()

	out, err := gen.EnhanceContent(context.Background(), EnhanceContentDTO{
		Content:      "Already asking a question?",
		Instructions: "make it punchier",
	})
	if err != nil {
		t.Fatalf("EnhanceContent: %v", err)
	}
	if !strings.Contains(out.Content, "make it punchier") {
		t.Fatalf("instructions not applied: %q", out.Content)
	}
	if strings.Contains(out.Content, "What do you think?") {
		t.Fatalf("call to action added to a draft that already engages: %q", out.Content)
	}
}

func TestEnhanceContentRequiresContent(t *testing.T) {
	gen := newGenerator()
	if _, err := gen.EnhanceContent(context.Background(), EnhanceContentDTO{Content: "  "}); pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
