package client

// Reading status values accepted by the API.
const (
	StatusWantToRead       = "Want to Read"
	StatusCurrentlyReading = "Currently Reading"
	StatusRead             = "Read"
)

// Book mirrors the server's book record.
type Book struct {
	ID            int64   `json:"id"`
	UserID        string  `json:"userId"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	CoverImageURL *string `json:"coverImageUrl"`
	Status        string  `json:"status"`
	Rating        *int    `json:"rating"`
	Review        *string `json:"review"`
	CreatedAt     int64   `json:"createdAt"`
}

// Stats mirrors the server's aggregate view. Goal is nil when no goal is
// set for the current year; AverageRating is 0 when no Read books carry a
// rating.
type Stats struct {
	Goal          *int    `json:"goal"`
	TotalBooks    int     `json:"totalBooks"`
	AverageRating float64 `json:"averageRating"`
}

type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}
