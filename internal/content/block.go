package content

import "encoding/json"

// Block type tags as stored in the CMS. The set is closed: any other
// value decodes to a block with no payload, which the renderer skips.
const (
	TypeHero             = "heroBlock"
	TypeCTA              = "ctaBlock"
	TypeFeatures         = "featureBlock"
	TypeTestimonials     = "testimonialBlock"
	TypePricing          = "pricingBlock"
	TypeFAQ              = "faqBlock"
	TypeGallery          = "galleryBlock"
	TypeServiceList      = "serviceListBlock"
	TypeFeaturedProjects = "featuredProjectsBlock"
	TypeContactForm      = "contactFormBlock"
)

// Spacing controls the section wrapper's vertical rhythm. Valid values
// for each side are none/sm/md/lg/xl; anything else falls back to md.
type Spacing struct {
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
}

// Block is one ordered unit of page content: a tagged variant with at
// most one payload pointer set. Key is stable within a document and
// irrelevant to order. Shared section fields come from the CMS block
// base type and drive the section wrapper.
type Block struct {
	Key             string
	Type            string
	SectionTitle    string
	SectionSubtitle string
	Spacing         Spacing
	AnchorID        string

	Hero             *HeroBlock
	CTA              *CTABlock
	Features         *FeaturesBlock
	Testimonials     *TestimonialsBlock
	Pricing          *PricingBlock
	FAQ              *FAQBlock
	Gallery          *GalleryBlock
	ServiceList      *ServiceListBlock
	FeaturedProjects *FeaturedProjectsBlock
	ContactForm      *ContactFormBlock
}

// Blocks decodes a heterogeneous pageBuilder array while preserving
// order. A null array decodes to nil.
type Blocks []Block

type blockHead struct {
	Key             string   `json:"_key"`
	Type            string   `json:"_type"`
	SectionTitle    string   `json:"sectionTitle"`
	SectionSubtitle string   `json:"sectionSubtitle"`
	Spacing         *Spacing `json:"spacing"`
	AnchorID        *Slug    `json:"anchorId"`
}

// UnmarshalJSON reads the tag and shared fields, then decodes the
// variant payload. A payload that fails to decode leaves the block
// without a payload instead of failing the whole document: one
// malformed block must never take down the page.
func (b *Block) UnmarshalJSON(data []byte) error {
	var head blockHead
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	b.Key = head.Key
	b.Type = head.Type
	b.SectionTitle = head.SectionTitle
	b.SectionSubtitle = head.SectionSubtitle
	if head.Spacing != nil {
		b.Spacing = *head.Spacing
	}
	if head.AnchorID != nil {
		b.AnchorID = head.AnchorID.Current
	}

	decode := func(v any) bool {
		return json.Unmarshal(data, v) == nil
	}

	switch head.Type {
	case TypeHero:
		v := new(HeroBlock)
		if decode(v) {
			b.Hero = v
		}
	case TypeCTA:
		v := new(CTABlock)
		if decode(v) {
			b.CTA = v
		}
	case TypeFeatures:
		v := new(FeaturesBlock)
		if decode(v) {
			b.Features = v
		}
	case TypeTestimonials:
		v := new(TestimonialsBlock)
		if decode(v) {
			b.Testimonials = v
		}
	case TypePricing:
		v := new(PricingBlock)
		if decode(v) {
			b.Pricing = v
		}
	case TypeFAQ:
		v := new(FAQBlock)
		if decode(v) {
			b.FAQ = v
		}
	case TypeGallery:
		v := new(GalleryBlock)
		if decode(v) {
			b.Gallery = v
		}
	case TypeServiceList:
		v := new(ServiceListBlock)
		if decode(v) {
			b.ServiceList = v
		}
	case TypeFeaturedProjects:
		v := new(FeaturedProjectsBlock)
		if decode(v) {
			b.FeaturedProjects = v
		}
	case TypeContactForm:
		v := new(ContactFormBlock)
		if decode(v) {
			b.ContactForm = v
		}
	}

	return nil
}

// CTALink is a text/link pair used by hero call-to-actions.
type CTALink struct {
	Text string `json:"text,omitempty"`
	Link string `json:"link,omitempty"`
}

// HeroBlock renders full-screen and is exempt from the section wrapper.
type HeroBlock struct {
	Heading         string   `json:"heading"`
	Subheading      string   `json:"subheading,omitempty"`
	BackgroundImage *Media   `json:"backgroundImage,omitempty"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	PrimaryCTA      *CTALink `json:"primaryCta,omitempty"`
	SecondaryCTA    *CTALink `json:"secondaryCta,omitempty"`
	Alignment       string   `json:"alignment,omitempty"` // left|center|right
	Overlay         *bool    `json:"overlay,omitempty"`   // default true
	Height          string   `json:"height,omitempty"`    // full|large|medium
}

type CTABlock struct {
	Heading     string `json:"heading"`
	Text        string `json:"text,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	ButtonLink  string `json:"buttonLink,omitempty"`
	ButtonStyle string `json:"buttonStyle,omitempty"` // primary|outline|white
	Alignment   string `json:"alignment,omitempty"`   // left|center
}

type Feature struct {
	Key         string `json:"_key"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

type FeaturesBlock struct {
	Heading    string    `json:"heading,omitempty"`
	Subheading string    `json:"subheading,omitempty"`
	Features   []Feature `json:"features,omitempty"`
	Columns    int       `json:"columns,omitempty"` // 2|3|4, default 3
	Style      string    `json:"style,omitempty"`   // cards|simple|icons
}

type Testimonial struct {
	Key     string `json:"_key"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Image   *Media `json:"image,omitempty"`
}

type TestimonialsBlock struct {
	Heading      string        `json:"heading,omitempty"`
	Subheading   string        `json:"subheading,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
	Layout       string        `json:"layout,omitempty"` // grid|carousel|single
}

type PlanFeature struct {
	Key      string `json:"_key"`
	Text     string `json:"text"`
	Included *bool  `json:"included,omitempty"` // default true
}

type LabelLink struct {
	Label string `json:"label,omitempty"`
	Link  string `json:"link,omitempty"`
}

type PricingPlan struct {
	Key         string        `json:"_key"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       string        `json:"price"`
	Period      string        `json:"period,omitempty"` // month|year|once
	Features    []PlanFeature `json:"features,omitempty"`
	CTA         *LabelLink    `json:"cta,omitempty"`
	Highlighted bool          `json:"highlighted,omitempty"`
	Badge       string        `json:"badge,omitempty"`
}

type PricingBlock struct {
	Heading    string        `json:"heading,omitempty"`
	Subheading string        `json:"subheading,omitempty"`
	Plans      []PricingPlan `json:"plans,omitempty"`
	Style      string        `json:"style,omitempty"` // cards|table|minimal
}

type FAQItem struct {
	Key      string `json:"_key"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQBlock struct {
	Heading       string    `json:"heading,omitempty"`
	Items         []FAQItem `json:"items,omitempty"`
	Layout        string    `json:"layout,omitempty"` // accordion|grid|two-columns
	AllowMultiple bool      `json:"allowMultiple,omitempty"`
}

type GalleryImage struct {
	Key         string    `json:"_key"`
	Asset       *AssetRef `json:"asset,omitempty"`
	Alt         string    `json:"alt,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
}

func (g GalleryImage) Media() Media {
	return Media{Asset: g.Asset, Alt: g.Alt}
}

type GalleryBlock struct {
	Heading        string         `json:"heading,omitempty"`
	Subheading     string         `json:"subheading,omitempty"`
	Images         []GalleryImage `json:"images,omitempty"`
	Layout         string         `json:"layout,omitempty"`         // grid-2|grid-3|grid-4|masonry|carousel
	EnableLightbox *bool          `json:"enableLightbox,omitempty"` // default true
	CTAText        string         `json:"ctaText,omitempty"`
	CTALink        string         `json:"ctaLink,omitempty"`
}

type Service struct {
	Key         string   `json:"_key"`
	Icon        string   `json:"icon,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Link        string   `json:"link,omitempty"`
}

type ServiceListBlock struct {
	Heading       string    `json:"heading"`
	Subheading    string    `json:"subheading,omitempty"`
	Services      []Service `json:"services,omitempty"`
	Columns       int       `json:"columns,omitempty"` // 2|3|4, default 4
	ShowLearnMore *bool     `json:"showLearnMore,omitempty"`
}

// FeaturedProjectsBlock carries fully-resolved project summaries: the
// reference expansion happens in the query projection, never here.
type FeaturedProjectsBlock struct {
	Heading      string           `json:"heading"`
	Subheading   string           `json:"subheading,omitempty"`
	Projects     []ProjectSummary `json:"projects,omitempty"`
	Layout       string           `json:"layout,omitempty"` // grid-2|grid-3|featured
	ShowCategory *bool            `json:"showCategory,omitempty"`
	ShowYear     *bool            `json:"showYear,omitempty"`
	CTAText      string           `json:"ctaText,omitempty"`
	CTALink      string           `json:"ctaLink,omitempty"`
}

type ContactFormBlock struct {
	Heading          string   `json:"heading,omitempty"`
	Description      string   `json:"description,omitempty"`
	Email            string   `json:"email,omitempty"`
	Address          string   `json:"address,omitempty"`
	ProjectTypes     []string `json:"projectTypes,omitempty"`
	BudgetRanges     []string `json:"budgetRanges,omitempty"`
	SubmitButtonText string   `json:"submitButtonText,omitempty"`
}
