package domain

// Media is an attachment owned by a Shortcut.
// It is part of the schema only; no operation creates or reads it yet.
type Media struct {
	ID         int64  `json:"id"`
	ShortcutID int64  `json:"shortcutId"`
	Type       string `json:"type"`
	Path       string `json:"path"`
}
