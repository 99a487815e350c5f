package models

// EmailDraft is a composed, not yet sent email. Drafts are re-derived from
// the current projection on every pass and never persisted.
type EmailDraft struct {
	// To is the recipient address.
	To string
	// Name is the recipient's display name.
	Name string
	// Subject is the subject line.
	Subject string
	// HTML is the message body fragment.
	HTML string
}
