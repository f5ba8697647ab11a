package events

// Event is a scheduled chore or appointment for one of a user's pets. Info
// is an opaque document stored and returned untouched; Date and Frequency
// are free-form strings chosen by the frontend.
type Event struct {
	ID        string         `json:"id"`
	User      string         `json:"user"`
	Name      string         `json:"name"`
	Info      map[string]any `json:"info,omitempty"`
	Date      string         `json:"date,omitempty"`
	Frequency string         `json:"frequency,omitempty"`
}
