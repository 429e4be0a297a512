package feed

import (
	"context"

	"github.com/codingWithPavani/photospot-project/internal/db"

	"github.com/jackc/pgx/v5"
)

// trendingLimit caps the trending panel.
const trendingLimit = 6

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Explore returns posts matching the query, newest first.
// A post matches when its title, description, location name or location city
// contains q as a case-insensitive substring; an empty q matches everything.
// Counts come from the aggregation join, a single round trip.
func (s *Service) Explore(ctx context.Context, q string) ([]PostCard, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.uploader_id, u.username, p.title, p.description,
		       COALESCE(l.name, ''), COALESCE(l.city, ''),
		       p.image_url, p.video_url, p.created_at,
		       COUNT(DISTINCT lk.user_id) AS like_count,
		       COUNT(DISTINCT cm.id) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.uploader_id
		LEFT JOIN locations l ON l.id = p.location_id
		LEFT JOIN likes lk ON lk.post_id = p.id
		LEFT JOIN comments cm ON cm.post_id = p.id
		WHERE $1 = ''
		   OR p.title ILIKE '%' || $1 || '%'
		   OR p.description ILIKE '%' || $1 || '%'
		   OR l.name ILIKE '%' || $1 || '%'
		   OR l.city ILIKE '%' || $1 || '%'
		GROUP BY p.id, u.username, l.name, l.city
		ORDER BY p.created_at DESC
	`, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCards(rows)
}

// Trending ranks the entire post set by 2*likes + comments, ties broken by
// recency, truncated to the top 6. Recomputed on every call; no cache.
func (s *Service) Trending(ctx context.Context) ([]PostCard, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.uploader_id, u.username, p.title, p.description,
		       COALESCE(l.name, ''), COALESCE(l.city, ''),
		       p.image_url, p.video_url, p.created_at,
		       COUNT(DISTINCT lk.user_id) AS like_count,
		       COUNT(DISTINCT cm.id) AS comment_count
		FROM posts p
		JOIN users u ON u.id = p.uploader_id
		LEFT JOIN locations l ON l.id = p.location_id
		LEFT JOIN likes lk ON lk.post_id = p.id
		LEFT JOIN comments cm ON cm.post_id = p.id
		GROUP BY p.id, u.username, l.name, l.city
		ORDER BY 2 * COUNT(DISTINCT lk.user_id) + COUNT(DISTINCT cm.id) DESC, p.created_at DESC
		LIMIT $1
	`, trendingLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCards(rows)
}

func scanCards(rows pgx.Rows) ([]PostCard, error) {
	var cards []PostCard
	for rows.Next() {
		var card PostCard
		if err := rows.Scan(&card.ID, &card.UploaderID, &card.Uploader, &card.Title, &card.Description,
			&card.LocationName, &card.LocationCity, &card.ImageURL, &card.VideoURL, &card.CreatedAt,
			&card.LikeCount, &card.CommentCount); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
