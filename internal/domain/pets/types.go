package pets

// Pet tracks one animal's stats, vet details, and photo for a user. Info and
// Vet are opaque documents owned by the frontend; the backend stores and
// returns them untouched.
type Pet struct {
	ID   string         `json:"id"`
	User string         `json:"user"`
	Name string         `json:"name"`
	Info map[string]any `json:"info,omitempty"`
	Vet  map[string]any `json:"vet,omitempty"`
	Pic  string         `json:"pic,omitempty"`
}

// StoredPhoto describes an uploaded pet picture.
type StoredPhoto struct {
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}
