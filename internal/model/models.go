package model

// Reading status values for a book. Stored verbatim in the status column.
const (
	StatusWantToRead       = "Want to Read"
	StatusCurrentlyReading = "Currently Reading"
	StatusRead             = "Read"
)

// ValidStatus reports whether s is one of the three reading states.
func ValidStatus(s string) bool {
	return s == StatusWantToRead || s == StatusCurrentlyReading || s == StatusRead
}

type User struct {
	ID                        string  `json:"id" db:"id"`
	Email                     string  `json:"email" db:"email"`
	PasswordHash              string  `json:"-" db:"password_hash"`
	Nickname                  *string `json:"nickname" db:"nickname"`
	PasswordResetTokenHash    *string `json:"-" db:"password_reset_token_hash"`
	PasswordResetTokenExpires *int64  `json:"-" db:"password_reset_token_expires_at"`
	CreatedAt                 int64   `json:"created_at" db:"created_at"`
}

type Book struct {
	ID            int64   `json:"id" db:"id"`
	UserID        string  `json:"userId" db:"user_id"`
	Title         string  `json:"title" db:"title"`
	Author        string  `json:"author" db:"author"`
	CoverImageURL *string `json:"coverImageUrl" db:"cover_image_url"`
	Status        string  `json:"status" db:"status"`
	Rating        *int    `json:"rating" db:"rating"`
	Review        *string `json:"review" db:"review"`
	CreatedAt     int64   `json:"createdAt" db:"created_at"`
}

type Goal struct {
	ID        int64  `json:"id" db:"id"`
	UserID    string `json:"userId" db:"user_id"`
	Year      int    `json:"year" db:"year"`
	Target    int    `json:"target" db:"target"`
	CreatedAt int64  `json:"createdAt" db:"created_at"`
}

// Stats is the aggregate view for the signed-in user.
// Goal is nil when no goal exists for the current year.
// AverageRating is 0 when the user has no rated Read books.
type Stats struct {
	Goal          *int    `json:"goal"`
	TotalBooks    int     `json:"totalBooks"`
	AverageRating float64 `json:"averageRating"`
}

// Recommendation is a single AI-suggested book.
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
