package location

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func TestLocationHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO locations`).
		WithArgs(pgxmock.AnyArg(), "Eiffel Tower", "Paris", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	mock.ExpectQuery(`SELECT id, name, city, latitude, longitude`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "latitude", "longitude"}).
			AddRow("loc-1", "Eiffel Tower", "Paris", nil, nil))

	app := fiber.New()
	RegisterRoutes(app.Group("/locations"), NewService(mock), func(c *fiber.Ctx) error { return c.Next() })

	body, _ := json.Marshal(Location{Name: "Eiffel Tower", City: "Paris"})
	req := httptest.NewRequest(http.MethodPost, "/locations/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create location status: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/locations/", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list locations status: %v", err)
	}
}

func TestLocationHandlersMissingName(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/locations"), NewService(nil), func(c *fiber.Ctx) error { return c.Next() })

	req := httptest.NewRequest(http.MethodPost, "/locations/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}
