package models

// Card is the public-safe projection of a Profile returned by search. Social
// links, health notes and the rest of the raw profile never leave through it.
type Card struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	City           string `json:"city,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	Religion       string `json:"religion,omitempty"`
	ReligionLevel  string `json:"religionLevel,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
	UserID         string `json:"userId"`
	Verified       bool   `json:"verified"`
}
