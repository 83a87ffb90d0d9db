package models

// FeatureItem is one card of the features grid
type FeatureItem struct {
	Icon        string `yaml:"icon"` // lucide icon handle, e.g. "message-circle"
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// StepItem is one step of the "how it works" row. Display order is declaration order.
type StepItem struct {
	Step        string `yaml:"step"` // label shown in the bubble, e.g. "01"
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// IntegrationItem is one tile of the integrations grid
type IntegrationItem struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"` // emoji glyph or image key
}

// TestimonialItem is one customer quote card
type TestimonialItem struct {
	Quote   string `yaml:"quote"`
	Metric  string `yaml:"metric"`
	Company string `yaml:"company"`
	Benefit string `yaml:"benefit"`
}

// ComplianceItem is one card of the trust & compliance section
type ComplianceItem struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SectionCopy holds the heading block shown above a section's cards
type SectionCopy struct {
	Heading    string `yaml:"heading"`
	Subheading string `yaml:"subheading"`
}

type Brand struct {
	Name      string `yaml:"name"`
	FullName  string `yaml:"full_name"`
	Tagline   string `yaml:"tagline"`
	Copyright string `yaml:"copyright"`
}

type ChatMessage struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Hero struct {
	Badge       string      `yaml:"badge"`
	Headline    string      `yaml:"headline"`
	Highlight   string      `yaml:"highlight"`
	Subheadline string      `yaml:"subheadline"`
	ImageKey    string      `yaml:"image_key"`
	ImageAlt    string      `yaml:"image_alt"`
	Chat        ChatMessage `yaml:"chat"`
}

// Partner describes the "powered by" block and the strategic partnership card
type Partner struct {
	Name        string      `yaml:"name"`
	LogoKey     string      `yaml:"logo_key"`
	Badge       string      `yaml:"badge"`
	Note        string      `yaml:"note"`
	Partnership SectionCopy `yaml:"partnership"`
	Tagline     string      `yaml:"tagline"`
}

type Perk struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
}

type CallToAction struct {
	SectionCopy `yaml:",inline"`
	Perks       []Perk `yaml:"perks"`
}

type FooterLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type FooterColumn struct {
	Title string       `yaml:"title"`
	Links []FooterLink `yaml:"links"`
}

type FeatureSection struct {
	SectionCopy `yaml:",inline"`
	Items       []FeatureItem `yaml:"items"`
}

type StepSection struct {
	SectionCopy `yaml:",inline"`
	Items       []StepItem `yaml:"items"`
}

type IntegrationSection struct {
	SectionCopy `yaml:",inline"`
	Items       []IntegrationItem `yaml:"items"`
}

type TestimonialSection struct {
	SectionCopy `yaml:",inline"`
	Items       []TestimonialItem `yaml:"items"`
}

type ComplianceSection struct {
	SectionCopy `yaml:",inline"`
	Items       []ComplianceItem `yaml:"items"`
}

// Content is the full set of tables the landing page is rendered from.
// It is built once and never mutated afterwards.
type Content struct {
	Brand        Brand              `yaml:"brand"`
	Hero         Hero               `yaml:"hero"`
	Features     FeatureSection     `yaml:"features"`
	Steps        StepSection        `yaml:"steps"`
	Integrations IntegrationSection `yaml:"integrations"`
	Partner      Partner            `yaml:"partner"`
	Testimonials TestimonialSection `yaml:"testimonials"`
	Compliance   ComplianceSection  `yaml:"compliance"`
	CTA          CallToAction       `yaml:"cta"`
	Footer       []FooterColumn     `yaml:"footer"`
}
