package feed

import "time"

// PostCard is a post annotated with the aggregate counts the explore page shows.
type PostCard struct {
	ID           string    `json:"id"`
	UploaderID   string    `json:"uploader_id"`
	Uploader     string    `json:"uploader"`
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
