package location

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func TestCreateLocation(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	lat, lng := 48.8566, 2.3522
	mock.ExpectExec(`INSERT INTO locations`).
		WithArgs(pgxmock.AnyArg(), "Eiffel Tower", "Paris", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService(mock)
	loc, err := svc.CreateLocation(context.Background(), Location{Name: "Eiffel Tower", City: "Paris", Latitude: &lat, Longitude: &lng})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	if loc.ID == "" {
		t.Fatalf("expected location id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListLocations(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, city, latitude, longitude`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "latitude", "longitude"}).
			AddRow("loc-1", "Eiffel Tower", "Paris", nil, nil).
			AddRow("loc-2", "Gasworks Park", "Seattle", nil, nil))

	svc := NewService(mock)
	locations, err := svc.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations")
	}
}
