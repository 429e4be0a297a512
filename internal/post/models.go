package post

import "time"

type Post struct {
	ID          string    `json:"id"`
	UploaderID  string    `json:"uploader_id"`
	Title       string    `json:"title" form:"title"`
	Description string    `json:"description" form:"description"`
	LocationID  *string   `json:"location_id,omitempty" form:"location_id"`
	ImageURL    *string   `json:"image_url,omitempty" form:"image_url"`
	VideoURL    *string   `json:"video_url,omitempty" form:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Detail is the post page payload: the post, its uploader and location,
// the live like count and the comment thread oldest first.
type Detail struct {
	Post
	Uploader     string        `json:"uploader"`
	LocationName string        `json:"location_name,omitempty"`
	LocationCity string        `json:"location_city,omitempty"`
	LikeCount    int           `json:"like_count"`
	CommentCount int           `json:"comment_count"`
	Comments     []CommentView `json:"comments"`
}

type CommentView struct {
	User          string  `json:"user"`
	Text          string  `json:"text"`
	Created       string  `json:"created"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

// createdFormat matches the timestamp format comments are displayed with.
const createdFormat = "02 Jan 2006 15:04"
