package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/codingWithPavani/photospot-project/internal/db"
	"github.com/codingWithPavani/photospot-project/internal/stream"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPostNotFound = errors.New("post not found")

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// ToggleLike flips the like state for (userID, postID): an existing row is
// deleted, a missing one inserted. Two concurrent inserts race on the
// (user_id, post_id) primary key; the loser finds the row already there and
// reports the state the winner produced instead of failing.
func (s *Service) ToggleLike(ctx context.Context, userID, postID string) (LikeResult, error) {
	if err := s.postExists(ctx, postID); err != nil {
		return LikeResult{}, err
	}

	var liked bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)
	`, userID, postID).Scan(&liked)
	if err != nil {
		return LikeResult{}, err
	}

	if liked {
		if _, err := s.db.Exec(ctx, `
			DELETE FROM likes WHERE user_id = $1 AND post_id = $2
		`, userID, postID); err != nil {
			return LikeResult{}, err
		}
		liked = false
	} else {
		_, err := s.db.Exec(ctx, `
			INSERT INTO likes (user_id, post_id) VALUES ($1,$2)
		`, userID, postID)
		if err != nil && !db.IsUniqueViolation(err) {
			return LikeResult{}, err
		}
		liked = true
	}

	var count int
	if err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM likes WHERE post_id = $1
	`, postID).Scan(&count); err != nil {
		return LikeResult{}, err
	}

	s.publish(postID, map[string]any{"type": "like", "post_id": postID, "liked": liked, "count": count})
	return LikeResult{Liked: liked, Count: count}, nil
}

// AddComment appends an immutable comment and returns it the way the client
// renders it, with the fresh comment count.
func (s *Service) AddComment(ctx context.Context, userID, username, postID, text string) (CommentResult, error) {
	if err := s.postExists(ctx, postID); err != nil {
		return CommentResult{}, err
	}

	var createdAt time.Time
	err := s.db.QueryRow(ctx, `
		INSERT INTO comments (id, user_id, post_id, body)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, uuid.NewString(), userID, postID, text).Scan(&createdAt)
	if err != nil {
		return CommentResult{}, err
	}

	var count int
	if err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM comments WHERE post_id = $1
	`, postID).Scan(&count); err != nil {
		return CommentResult{}, err
	}

	result := CommentResult{
		User:          username,
		Comment:       text,
		Created:       createdAt.Format(createdFormat),
		ProfilePicURL: s.avatarFor(ctx, userID),
		CommentCount:  count,
	}

	s.publish(postID, map[string]any{"type": "comment", "post_id": postID, "user": username, "comment": text, "comment_count": count})
	return result, nil
}

// GetComments returns the poll payload: live counts plus the thread oldest
// first, each author's profile picture attached when one exists.
func (s *Service) GetComments(ctx context.Context, postID string) (CommentsPage, error) {
	var page CommentsPage
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT lk.user_id), COUNT(DISTINCT cm.id)
		FROM posts p
		LEFT JOIN likes lk ON lk.post_id = p.id
		LEFT JOIN comments cm ON cm.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`, postID).Scan(&page.LikeCount, &page.CommentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CommentsPage{}, ErrPostNotFound
		}
		return CommentsPage{}, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT u.username, c.body, c.created_at, pp.profile_pic_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN photographer_profiles pp ON pp.user_id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at
	`, postID)
	if err != nil {
		return CommentsPage{}, err
	}
	defer rows.Close()

	page.Comments = []CommentView{}
	for rows.Next() {
		var view CommentView
		var createdAt time.Time
		if err := rows.Scan(&view.User, &view.Text, &createdAt, &view.ProfilePicURL); err != nil {
			return CommentsPage{}, err
		}
		view.Created = createdAt.Format(createdFormat)
		page.Comments = append(page.Comments, view)
	}
	return page, rows.Err()
}

func (s *Service) postExists(ctx context.Context, postID string) error {
	var exists bool
	if err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)
	`, postID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}

func (s *Service) avatarFor(ctx context.Context, userID string) *string {
	var url *string
	err := s.db.QueryRow(ctx, `
		SELECT profile_pic_url FROM photographer_profiles WHERE user_id = $1
	`, userID).Scan(&url)
	if err != nil {
		return nil
	}
	return url
}

func (s *Service) publish(postID string, event map[string]any) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	s.hub.Broadcast(postID, payload)
}
