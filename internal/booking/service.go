package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/codingWithPavani/photospot-project/internal/auth"
	"github.com/codingWithPavani/photospot-project/internal/db"
	"github.com/codingWithPavani/photospot-project/internal/mail"
)

var ErrProfileNotFound = errors.New("photographer profile not found")

type Service struct {
	db     db.Querier
	mailer mail.Mailer
}

func NewService(q db.Querier, mailer mail.Mailer) *Service {
	return &Service{db: q, mailer: mailer}
}

// Book emails a photoshoot request to the photographer behind profileID and
// returns the photographer's username so the caller can be redirected to
// their profile.
func (s *Service) Book(ctx context.Context, profileID string, client auth.Identity, req Request) (string, error) {
	p, err := s.photographerFor(ctx, profileID)
	if err != nil {
		return "", err
	}

	replyTo := req.Email
	if replyTo == "" {
		replyTo = client.Email
	}

	msg := mail.Message{
		To:      p.Email,
		ReplyTo: replyTo,
		Subject: fmt.Sprintf("New photoshoot request from %s", client.Username),
		Body: fmt.Sprintf(
			"You have a new photoshoot request on PhotoSpot.\n\n"+
				"Client: %s\nReply to: %s\nDate: %s\nEvent type: %s\n\n%s\n",
			client.Username, replyTo, req.Date, req.EventType, req.Message),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return "", fmt.Errorf("send booking email: %w", err)
	}
	return p.Username, nil
}

func (s *Service) ownerUsername(ctx context.Context, profileID string) (string, error) {
	p, err := s.photographerFor(ctx, profileID)
	if err != nil {
		return "", err
	}
	return p.Username, nil
}

func (s *Service) photographerFor(ctx context.Context, profileID string) (photographer, error) {
	var p photographer
	err := s.db.QueryRow(ctx,
		`SELECT u.username, u.email
		 FROM photographer_profiles pp
		 JOIN users u ON u.id = pp.user_id
		 WHERE pp.id = $1`,
		profileID,
	).Scan(&p.Username, &p.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return photographer{}, ErrProfileNotFound
	}
	if err != nil {
		return photographer{}, fmt.Errorf("query photographer: %w", err)
	}
	return p, nil
}
