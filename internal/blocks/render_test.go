package blocks

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/darko-kalany/studio/internal/content"
)

func render(t *testing.T, blocks content.Blocks, rc Context) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, blocks, rc); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func heroBlock(heading string) content.Block {
	return content.Block{
		Key:  "hero1",
		Type: content.TypeHero,
		Hero: &content.HeroBlock{Heading: heading},
	}
}

func TestRenderPreservesDocumentOrder(t *testing.T) {
	blocks := content.Blocks{
		{Key: "a", Type: content.TypeCTA, CTA: &content.CTABlock{Heading: "First Section"}},
		{Key: "b", Type: content.TypeFAQ, FAQ: &content.FAQBlock{Items: []content.FAQItem{{Key: "q1", Question: "Second Section", Answer: "yes"}}}},
		{Key: "c", Type: content.TypeCTA, CTA: &content.CTABlock{Heading: "Third Section"}},
	}

	out := render(t, blocks, Context{})

	first := strings.Index(out, "First Section")
	second := strings.Index(out, "Second Section")
	third := strings.Index(out, "Third Section")

	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing sections in output:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Errorf("sections out of order: %d %d %d", first, second, third)
	}
}

func TestUnknownBlockSkippedOthersRender(t *testing.T) {
	blocks := content.Blocks{
		{Key: "a", Type: content.TypeCTA, CTA: &content.CTABlock{Heading: "Before"}},
		{Key: "x", Type: "marqueeBlock"},
		{Key: "b", Type: content.TypeCTA, CTA: &content.CTABlock{Heading: "After"}},
	}

	out := render(t, blocks, Context{})

	if !strings.Contains(out, "Before") || !strings.Contains(out, "After") {
		t.Errorf("known blocks must render around an unknown one:\n%s", out)
	}
	if strings.Contains(out, "marqueeBlock") {
		t.Error("unknown block leaked into output")
	}
}

func TestKnownTypeWithoutPayloadSkipped(t *testing.T) {
	// A malformed payload decodes to a block with the right tag but no
	// variant data; it must be skipped like an unknown type.
	blocks := content.Blocks{
		{Key: "x", Type: content.TypePricing},
		{Key: "a", Type: content.TypeCTA, CTA: &content.CTABlock{Heading: "Still Here"}},
	}

	out := render(t, blocks, Context{})
	if !strings.Contains(out, "Still Here") {
		t.Errorf("page should survive a payload-less block:\n%s", out)
	}
}

func TestEmptyCollectionsRenderNothing(t *testing.T) {
	cases := []struct {
		name  string
		block content.Block
	}{
		{"gallery", content.Block{Key: "g", Type: content.TypeGallery, Gallery: &content.GalleryBlock{Heading: "Gallery"}}},
		{"pricing", content.Block{Key: "p", Type: content.TypePricing, Pricing: &content.PricingBlock{Heading: "Pricing"}}},
		{"faq", content.Block{Key: "f", Type: content.TypeFAQ, FAQ: &content.FAQBlock{Heading: "FAQ"}}},
		{"testimonials", content.Block{Key: "t", Type: content.TypeTestimonials, Testimonials: &content.TestimonialsBlock{Heading: "Voices"}}},
		{"services", content.Block{Key: "s", Type: content.TypeServiceList, ServiceList: &content.ServiceListBlock{Heading: "Services"}}},
		{"featured", content.Block{Key: "fp", Type: content.TypeFeaturedProjects, FeaturedProjects: &content.FeaturedProjectsBlock{Heading: "Works"}}},
		{"features", content.Block{Key: "ft", Type: content.TypeFeatures, Features: &content.FeaturesBlock{Heading: "Features"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := render(t, content.Blocks{tc.block}, Context{})
			if out != "" {
				t.Errorf("empty %s block should produce no output, got:\n%s", tc.name, out)
			}
		})
	}
}

func TestHeroWithEmptyPricingRendersOnlyHero(t *testing.T) {
	blocks := content.Blocks{
		heroBlock("Hyper-Real"),
		{Key: "p", Type: content.TypePricing, Pricing: &content.PricingBlock{Heading: "Plans"}},
	}

	out := render(t, blocks, Context{})

	if !strings.Contains(out, "Hyper-Real") {
		t.Error("hero missing from output")
	}
	if strings.Contains(out, "pricing") || strings.Contains(out, "Plans") {
		t.Errorf("empty pricing section must be entirely absent:\n%s", out)
	}
}

func TestHeroRendersUnwrapped(t *testing.T) {
	out := render(t, content.Blocks{heroBlock("Big")}, Context{})

	if strings.Contains(out, `class="section`) {
		t.Errorf("hero must not get the section wrapper:\n%s", out)
	}
	if !strings.Contains(out, `class="hero hero-full hero-align-center"`) {
		t.Errorf("hero defaults (full height, center) missing:\n%s", out)
	}
}

func TestHeroOptionalFieldsAbsent(t *testing.T) {
	out := render(t, content.Blocks{heroBlock("Solo")}, Context{})

	if strings.Contains(out, "hero-subheading") {
		t.Error("absent subheading must not render an empty node")
	}
	if strings.Contains(out, "hero-actions") {
		t.Error("absent CTAs must not render an empty action row")
	}
}

func TestHeroUnrecognizedVariantsFallBack(t *testing.T) {
	blocks := content.Blocks{{
		Key:  "h",
		Type: content.TypeHero,
		Hero: &content.HeroBlock{Heading: "X", Alignment: "diagonal", Height: "gigantic"},
	}}

	out := render(t, blocks, Context{})
	if !strings.Contains(out, "hero-full") || !strings.Contains(out, "hero-align-center") {
		t.Errorf("unrecognized enum values must fall back to defaults:\n%s", out)
	}
}

func TestSectionWrapperSpacingDefaults(t *testing.T) {
	blocks := content.Blocks{{
		Key:  "c",
		Type: content.TypeCTA,
		CTA:  &content.CTABlock{Heading: "Wrapped"},
	}}

	out := render(t, blocks, Context{})
	if !strings.Contains(out, "pt-md") || !strings.Contains(out, "pb-md") {
		t.Errorf("unset spacing should default to md:\n%s", out)
	}
}

func TestSectionWrapperAnchorAndChrome(t *testing.T) {
	blocks := content.Blocks{{
		Key:             "c",
		Type:            content.TypeCTA,
		SectionTitle:    "Our Plans",
		SectionSubtitle: "Flexible",
		Spacing:         content.Spacing{Top: "xl", Bottom: "bogus"},
		AnchorID:        "plans",
		CTA:             &content.CTABlock{Heading: "Wrapped"},
	}}

	out := render(t, blocks, Context{})

	if !strings.Contains(out, `id="plans"`) {
		t.Error("anchor id missing")
	}
	if !strings.Contains(out, "Our Plans") || !strings.Contains(out, "Flexible") {
		t.Error("section title/subtitle missing")
	}
	if !strings.Contains(out, "pt-xl") || !strings.Contains(out, "pb-md") {
		t.Errorf("spacing classes wrong:\n%s", out)
	}
}

func galleryFixture() content.Block {
	return content.Block{
		Key:  "g",
		Type: content.TypeGallery,
		Gallery: &content.GalleryBlock{
			Heading: "Work",
			Images: []content.GalleryImage{
				{Key: "i0", Title: "Alpha", Category: "fashion"},
				{Key: "i1", Title: "Beta", Category: "film"},
				{Key: "i2", Title: "Gamma", Category: "fashion"},
			},
		},
	}
}

func TestGalleryFilterRestrictsItems(t *testing.T) {
	rc := Context{Path: "/portfolio", Query: url.Values{"filter": {"fashion"}}}

	out := render(t, content.Blocks{galleryFixture()}, rc)

	if !strings.Contains(out, "Alpha") || !strings.Contains(out, "Gamma") {
		t.Error("fashion items should be visible")
	}
	if strings.Contains(out, "Beta") {
		t.Error("film item should be filtered out")
	}
}

func TestGalleryFilterOptionsDistinct(t *testing.T) {
	out := render(t, content.Blocks{galleryFixture()}, Context{Path: "/portfolio"})

	if strings.Count(out, ">fashion<") != 1 {
		t.Errorf("fashion filter should appear exactly once:\n%s", out)
	}
	if !strings.Contains(out, ">All<") {
		t.Error("All option missing")
	}
}

func TestGalleryLightboxNavWraps(t *testing.T) {
	rc := Context{Path: "/portfolio", Query: url.Values{"image": {"2"}}}

	out := render(t, content.Blocks{galleryFixture()}, rc)

	// At the last index, next wraps to 0 and prev goes to 1.
	if !strings.Contains(out, "image=0") {
		t.Errorf("next link should wrap to index 0:\n%s", out)
	}
	if !strings.Contains(out, "image=1") {
		t.Errorf("prev link should point to index 1:\n%s", out)
	}
}

func TestGalleryFilterLinksCloseLightbox(t *testing.T) {
	rc := Context{Path: "/portfolio", Query: url.Values{"image": {"1"}}}

	out := render(t, content.Blocks{galleryFixture()}, rc)

	// Filter hrefs must drop the image param so a filter change closes
	// the lightbox rather than reusing a shifted index.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "gallery-filter") && strings.Contains(line, "image=") {
			t.Errorf("filter link retains lightbox state: %s", line)
		}
	}
}

func TestGalleryLightboxDisabled(t *testing.T) {
	disabled := false
	block := galleryFixture()
	block.Gallery.EnableLightbox = &disabled

	rc := Context{Path: "/portfolio", Query: url.Values{"image": {"1"}}}
	out := render(t, content.Blocks{block}, rc)

	if strings.Contains(out, "data-lightbox") {
		t.Error("lightbox rendered despite being disabled")
	}
}

func TestGalleryOutOfRangeIndexIgnored(t *testing.T) {
	rc := Context{Path: "/portfolio", Query: url.Values{"image": {"99"}}}

	out := render(t, content.Blocks{galleryFixture()}, rc)
	if strings.Contains(out, "data-lightbox") {
		t.Error("out-of-range lightbox index should stay closed")
	}
}

func TestFAQToggleLinksRadio(t *testing.T) {
	blocks := content.Blocks{{
		Key:  "f",
		Type: content.TypeFAQ,
		FAQ: &content.FAQBlock{
			Items: []content.FAQItem{
				{Key: "qa", Question: "A?", Answer: "a"},
				{Key: "qb", Question: "B?", Answer: "b"},
			},
		},
	}}

	// With qa open, the toggle link for qb must open only qb.
	rc := Context{Path: "/faq", Query: url.Values{"open": {"qa"}}}
	out := render(t, blocks, rc)

	if !strings.Contains(out, "faq-item-open") {
		t.Fatalf("qa should render open:\n%s", out)
	}
	if !strings.Contains(out, "open=qb") {
		t.Errorf("toggle link for qb missing:\n%s", out)
	}
	if strings.Contains(out, "open=qa&amp;open=qb") || strings.Contains(out, "open=qa&open=qb") {
		t.Error("radio mode must not keep qa open when opening qb")
	}
}

func TestFAQToggleLinksAllowMultiple(t *testing.T) {
	blocks := content.Blocks{{
		Key:  "f",
		Type: content.TypeFAQ,
		FAQ: &content.FAQBlock{
			AllowMultiple: true,
			Items: []content.FAQItem{
				{Key: "qa", Question: "A?", Answer: "a"},
				{Key: "qb", Question: "B?", Answer: "b"},
			},
		},
	}}

	rc := Context{Path: "/faq", Query: url.Values{"open": {"qa"}}}
	out := render(t, blocks, rc)

	if !strings.Contains(out, "open=qa&amp;open=qb") {
		t.Errorf("allowMultiple toggle for qb should keep qa open:\n%s", out)
	}
}

func TestPricingDefaultsAndFeatureMarks(t *testing.T) {
	excluded := false
	blocks := content.Blocks{{
		Key:  "p",
		Type: content.TypePricing,
		Pricing: &content.PricingBlock{
			Plans: []content.PricingPlan{{
				Key:   "basic",
				Name:  "Basic",
				Price: "$2,500",
				Features: []content.PlanFeature{
					{Key: "f1", Text: "4 hero images"},
					{Key: "f2", Text: "Motion loops", Included: &excluded},
				},
			}},
		},
	}}

	out := render(t, blocks, Context{})

	if !strings.Contains(out, "Choose Plan") {
		t.Error("plan without CTA should fall back to Choose Plan")
	}
	if !strings.Contains(out, `class="included"`) || !strings.Contains(out, `class="excluded"`) {
		t.Errorf("feature inclusion marks missing:\n%s", out)
	}
}

func TestDecodedDocumentRendersEndToEnd(t *testing.T) {
	raw := `{
		"_id": "page-1",
		"title": "Home",
		"slug": {"current": "/"},
		"pageBuilder": [
			{"_key": "h1", "_type": "heroBlock", "heading": "Hyper-Real"},
			{"_key": "p1", "_type": "pricingBlock", "plans": []}
		]
	}`

	var doc content.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	out := render(t, doc.Blocks, Context{DocumentID: doc.ID})

	if !strings.Contains(out, "Hyper-Real") {
		t.Error("hero missing")
	}
	if strings.Contains(out, "pricing") {
		t.Error("empty pricing block should be absent from the page")
	}
}
