package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/codingWithPavani/photospot-project/internal/db"
)

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	db db.Querier
}

func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

// GetPage assembles the public profile view for a username.
func (s *Service) GetPage(ctx context.Context, username string) (Page, error) {
	var owner Owner
	err := s.db.QueryRow(ctx,
		`SELECT id, username, full_name FROM users WHERE username = $1`,
		username,
	).Scan(&owner.ID, &owner.Username, &owner.FullName)
	if errors.Is(err, pgx.ErrNoRows) {
		return Page{}, ErrUserNotFound
	}
	if err != nil {
		return Page{}, fmt.Errorf("query user: %w", err)
	}

	page := Page{Owner: owner}

	prof, err := s.profileFor(ctx, owner.ID)
	if err != nil {
		return Page{}, err
	}
	page.Profile = prof

	posts, err := s.postsFor(ctx, owner.ID)
	if err != nil {
		return Page{}, err
	}
	page.Posts = posts
	return page, nil
}

func (s *Service) profileFor(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, bio, contact, portfolio_url, profile_pic_url
		 FROM photographer_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.Bio, &p.Contact, &p.PortfolioURL, &p.ProfilePicURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

func (s *Service) postsFor(ctx context.Context, userID string) ([]Post, error) {
	rows, err := s.db.Query(ctx,
		`SELECT p.id, p.title, p.description,
		        COALESCE(l.name, ''), COALESCE(l.city, ''),
		        p.image_url, p.video_url, p.created_at,
		        COUNT(DISTINCT lk.user_id), COUNT(DISTINCT cm.id)
		 FROM posts p
		 LEFT JOIN locations l ON l.id = p.location_id
		 LEFT JOIN likes lk ON lk.post_id = p.id
		 LEFT JOIN comments cm ON cm.post_id = p.id
		 WHERE p.uploader_id = $1
		 GROUP BY p.id, l.name, l.city
		 ORDER BY p.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]Post, 0)
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description,
			&p.LocationName, &p.LocationCity,
			&p.ImageURL, &p.VideoURL, &p.CreatedAt,
			&p.LikeCount, &p.CommentCount); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// Upsert creates the photographer profile on first edit and updates it
// afterwards. A nil ProfilePicURL keeps whatever picture is already stored.
func (s *Service) Upsert(ctx context.Context, userID string, in Profile) (Profile, error) {
	var p Profile
	err := s.db.QueryRow(ctx,
		`INSERT INTO photographer_profiles (id, user_id, bio, contact, portfolio_url, profile_pic_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
		   bio = EXCLUDED.bio,
		   contact = EXCLUDED.contact,
		   portfolio_url = EXCLUDED.portfolio_url,
		   profile_pic_url = COALESCE(EXCLUDED.profile_pic_url, photographer_profiles.profile_pic_url)
		 RETURNING id, user_id, bio, contact, portfolio_url, profile_pic_url`,
		uuid.NewString(), userID, in.Bio, in.Contact, in.PortfolioURL, in.ProfilePicURL,
	).Scan(&p.ID, &p.UserID, &p.Bio, &p.Contact, &p.PortfolioURL, &p.ProfilePicURL)
	if err != nil {
		return Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return p, nil
}
