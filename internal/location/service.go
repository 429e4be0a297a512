package location

import (
	"context"

	"github.com/codingWithPavani/photospot-project/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateLocation(ctx context.Context, input Location) (Location, error) {
	input.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO locations (id, name, city, latitude, longitude)
		VALUES ($1,$2,$3,$4,$5)
	`, input.ID, input.Name, input.City, input.Latitude, input.Longitude)
	if err != nil {
		return Location{}, err
	}
	return input, nil
}

func (s *Service) ListLocations(ctx context.Context) ([]Location, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, city, latitude, longitude
		FROM locations
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.Latitude, &l.Longitude); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, nil
}
