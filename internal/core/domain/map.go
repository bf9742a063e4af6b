package domain

// Map is a reference entity created by the seed step.
// Callers never create, update, or delete maps.
type Map struct {
	// ID is assigned by the store and never reused.
	ID int64 `json:"id"`

	// Name is the display name, unique across all maps.
	Name string `json:"name"`

	// ImagePath is an opaque asset path for the map's picture.
	ImagePath string `json:"imagePath"`
}
