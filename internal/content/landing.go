// Package content serves the static landing page copy (hero and feature
// cards). The copy is keyed by language, though only English is populated;
// other languages fall back to English.
package content

import "github.com/ijwiryacu/report-service/internal/session"

// Stat is a headline figure shown on the hero section.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Feature is one card on the features grid.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Landing is the full landing page copy.
type Landing struct {
	Language session.Language `json:"language"`
	Title    string           `json:"title"`
	Tagline  string           `json:"tagline"`
	Stats    []Stat           `json:"stats"`
	Features []Feature        `json:"features"`
}

var english = Landing{
	Language: session.LanguageEnglish,
	Title:    "Amplifying Community Voices",
	Tagline: "IjwiRyacu connects communities with local authorities, ensuring every voice is heard " +
		"and every issue finds resolution through transparent governance.",
	Stats: []Stat{
		{Label: "Issues Reported", Value: "2,847"},
		{Label: "Issues Resolved", Value: "2,134"},
		{Label: "Active Communities", Value: "186"},
		{Label: "Districts Covered", Value: "30"},
	},
	Features: []Feature{
		{
			Title:       "Multi-Channel Reporting",
			Description: "Report issues via web, SMS, WhatsApp, or USSD - accessible to everyone in the community.",
		},
		{
			Title:       "Multilingual Support",
			Description: "Available in Kinyarwanda and English, ensuring language is never a barrier to civic engagement.",
		},
		{
			Title:       "Transparent Tracking",
			Description: "Real-time dashboard showing issue status, resolution progress, and community impact metrics.",
		},
		{
			Title:       "Secure & Private",
			Description: "Your data is protected with enterprise-grade security while maintaining transparency in governance.",
		},
		{
			Title:       "Community-Driven",
			Description: "Built for communities, by communities. Every voice matters in shaping local governance.",
		},
		{
			Title:       "Rapid Response",
			Description: "Automated workflows ensure quick acknowledgment and efficient routing to relevant authorities.",
		},
	},
}

// GetLanding returns the landing copy for a language. Kinyarwanda copy is
// not yet translated, so every language currently serves the English text
// with the requested language echoed back.
func GetLanding(lang session.Language) Landing {
	landing := english
	if lang.Valid() {
		landing.Language = lang
	}
	return landing
}
