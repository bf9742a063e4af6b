package domain

// Shortcut binds a key combination and a free-text description to a Map.
// A Shortcut cannot outlive its Map.
type Shortcut struct {
	// ID is assigned by the store.
	ID int64 `json:"id"`

	// MapID references the owning Map.
	MapID int64 `json:"mapId"`

	// Description is free text, e.g. "jump throw to A site".
	Description string `json:"description"`

	// Shortcut is the key combination, e.g. "Ctrl + X".
	// Empty when the key was freed for another binding.
	Shortcut string `json:"shortcut"`
}

// IsBound reports whether the shortcut currently holds a key combination.
func (s Shortcut) IsBound() bool {
	return s.Shortcut != ""
}
