package reviews

// Review is a road-trip venue review left by a user.
type Review struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Title  string `json:"title"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
	Date   string `json:"date,omitempty"`
}
