package session

// Section enumerates the displayable application sections.
type Section string

const (
	SectionHome      Section = "home"
	SectionReport    Section = "report"
	SectionDashboard Section = "dashboard"
)

// Valid reports whether the section is a known value.
func (s Section) Valid() bool {
	switch s {
	case SectionHome, SectionReport, SectionDashboard:
		return true
	}
	return false
}

// Language enumerates supported interface languages. The preference is
// stored but does not change served content.
type Language string

const (
	LanguageEnglish     Language = "en"
	LanguageKinyarwanda Language = "rw"
)

// Valid reports whether the language is a known value.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageKinyarwanda:
		return true
	}
	return false
}

// ViewState is the single currently-displayed section plus the language
// preference. Navigation is pure state assignment.
type ViewState struct {
	Section  Section  `json:"section"`
	Language Language `json:"language"`
}

// DefaultViewState is the state a fresh session starts in.
func DefaultViewState() ViewState {
	return ViewState{Section: SectionHome, Language: LanguageEnglish}
}
