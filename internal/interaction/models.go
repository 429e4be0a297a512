package interaction

type LikeRequest struct {
	PostID string `json:"post_id" form:"post_id"`
}

type CommentRequest struct {
	PostID  string `json:"post_id" form:"post_id"`
	Comment string `json:"comment" form:"comment"`
}

type LikeResult struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

type CommentResult struct {
	User          string  `json:"user"`
	Comment       string  `json:"comment"`
	Created       string  `json:"created"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
	CommentCount  int     `json:"comment_count"`
}

type CommentView struct {
	User          string  `json:"user"`
	Text          string  `json:"text"`
	Created       string  `json:"created"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

// CommentsPage is the poll payload for a post's interaction state.
type CommentsPage struct {
	LikeCount    int           `json:"like_count"`
	CommentCount int           `json:"comment_count"`
	Comments     []CommentView `json:"comments"`
}

// createdFormat matches the timestamp format comments are displayed with.
const createdFormat = "02 Jan 2006 15:04"
