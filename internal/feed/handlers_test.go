package feed

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func TestExploreHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`SELECT p.id, p.uploader_id, u.username`).
		WithArgs("paris").
		WillReturnRows(pgxmock.NewRows(cardColumns()).
			AddRow("post-1", "user-1", "ansel", "Dusk", "", "Montmartre", "Paris", nil, nil, createdAt, 1, 0))

	mock.ExpectQuery(`SELECT p.id, p.uploader_id, u.username`).
		WithArgs(6).
		WillReturnRows(pgxmock.NewRows(cardColumns()).
			AddRow("post-1", "user-1", "ansel", "Dusk", "", "Montmartre", "Paris", nil, nil, createdAt, 1, 0))

	app := fiber.New()
	RegisterRoutes(app, NewService(mock))

	req := httptest.NewRequest(http.MethodGet, "/?q=paris", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("explore status: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Posts    []PostCard `json:"posts"`
		Trending []PostCard `json:"trending"`
		Query    string     `json:"query"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Query != "paris" || len(body.Posts) != 1 || len(body.Trending) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
