package domain

// Inquiry is a contact request tied to a listing by propertyId. The reference
// is soft: the listing may have been deleted since, and viewers must render
// such rows as an unknown property rather than fail.
type Inquiry struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Timestamp  int64  `json:"timestamp"` // unix milliseconds
}

// SiteSettings is the singleton marketing/contact record. Edits replace it
// wholesale.
type SiteSettings struct {
	HomepageTitle    string `json:"homepageTitle"`
	HomepageSubtitle string `json:"homepageSubtitle"`
	AboutText        string `json:"aboutText"`
	ContactEmail     string `json:"contactEmail"`
	ContactPhone     string `json:"contactPhone"`
	MetaDescription  string `json:"metaDescription"`
}

// AppState is the root aggregate. The whole thing is persisted as one
// document under a single storage key and overwritten in full on every
// mutation.
type AppState struct {
	Properties []Property   `json:"properties"`
	Inquiries  []Inquiry    `json:"inquiries"`
	Settings   SiteSettings `json:"settings"`
	Favorites  []string     `json:"favorites"`
}
