package post

import (
	"context"
	"errors"
	"time"

	"github.com/codingWithPavani/photospot-project/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound = errors.New("post not found")
	ErrNotOwner = errors.New("not the uploader")
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreatePost(ctx context.Context, input Post) (Post, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO posts (id, uploader_id, title, description, location_id, image_url, video_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.UploaderID, input.Title, input.Description, input.LocationID, input.ImageURL, input.VideoURL)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Post{}, err
	}
	return input, nil
}

// GetDetail loads the post with its counts in one aggregation query, then the
// comment thread (with the author's profile picture when one exists).
func (s *Service) GetDetail(ctx context.Context, id string) (Detail, error) {
	row := s.db.QueryRow(ctx, `
		SELECT p.id, p.uploader_id, u.username, p.title, p.description,
		       p.location_id, COALESCE(l.name, ''), COALESCE(l.city, ''),
		       p.image_url, p.video_url, p.created_at,
		       COUNT(DISTINCT lk.user_id) AS like_count,
		       COUNT(DISTINCT cm.id) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.uploader_id
		LEFT JOIN locations l ON l.id = p.location_id
		LEFT JOIN likes lk ON lk.post_id = p.id
		LEFT JOIN comments cm ON cm.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, u.username, l.name, l.city
	`, id)

	var d Detail
	if err := row.Scan(&d.ID, &d.UploaderID, &d.Uploader, &d.Title, &d.Description,
		&d.LocationID, &d.LocationName, &d.LocationCity,
		&d.ImageURL, &d.VideoURL, &d.CreatedAt, &d.LikeCount, &d.CommentCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}

	comments, err := s.comments(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	d.Comments = comments
	return d, nil
}

func (s *Service) comments(ctx context.Context, postID string) ([]CommentView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT u.username, c.body, c.created_at, pp.profile_pic_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN photographer_profiles pp ON pp.user_id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []CommentView{}
	for rows.Next() {
		var view CommentView
		var createdAt time.Time
		if err := rows.Scan(&view.User, &view.Text, &createdAt, &view.ProfilePicURL); err != nil {
			return nil, err
		}
		view.Created = createdAt.Format(createdFormat)
		comments = append(comments, view)
	}
	return comments, rows.Err()
}

// DeletePost removes the post when, and only when, userID is the uploader.
// Cascades in the schema take the likes and comments with it.
func (s *Service) DeletePost(ctx context.Context, postID, userID string) error {
	var uploaderID string
	err := s.db.QueryRow(ctx, `SELECT uploader_id FROM posts WHERE id = $1`, postID).Scan(&uploaderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if uploaderID != userID {
		return ErrNotOwner
	}

	_, err = s.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	return err
}
