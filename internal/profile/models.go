package profile

import "time"

type Profile struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Bio           string  `json:"bio" form:"bio"`
	Contact       string  `json:"contact" form:"contact"`
	PortfolioURL  string  `json:"portfolio_link" form:"portfolio_link"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty" form:"profile_pic_url"`
}

type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Page is the profile view: the owner, their photographer profile when one
// exists (nil otherwise, never an error), and their posts with counts.
type Page struct {
	Owner   Owner    `json:"owner"`
	Profile *Profile `json:"profile"`
	Posts   []Post   `json:"posts"`
}

type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LocationName string    `json:"location_name,omitempty"`
	LocationCity string    `json:"location_city,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	VideoURL     *string   `json:"video_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
}
