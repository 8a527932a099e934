package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/handler"
	"github.com/playmate/venue-booking/internal/model"
	"github.com/playmate/venue-booking/internal/repository"
	"github.com/playmate/venue-booking/internal/service"
	"github.com/playmate/venue-booking/internal/utils"
)

const testSecret = "router-test-secret"

// newTestRouter wires the protected routes over an unused pool.  The
// requests in these tests are rejected by middleware or request
// parsing before any query runs.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	db := new(sql.DB)
	sports := repository.NewSportRepo(db)
	venues := repository.NewVenueRepo(db)
	slots := repository.NewSlotRepo(db)
	games := repository.NewGameRepo(db)
	bookings := repository.NewBookingRepo(db)
	players := repository.NewGamePlayerRepo(db)

	bookingSvc := service.NewBookingService(db, bookings, games, venues, nil)
	memberSvc := service.NewMembershipService(db, games, players)

	e := echo.New()
	RegisterProtected(e, nil, testSecret,
		handler.NewBookingHandler(bookingSvc, games, nil),
		handler.NewGameHandler(memberSvc),
		handler.NewOwnerHandler(venues, slots, sports, bookings, games),
		handler.NewSportHandler(sports))
	return e
}

func doAs(t *testing.T, e *echo.Echo, role, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if role != "" {
		tok, err := utils.NewAccessToken(testSecret, 1, role, 5)
		if err != nil {
			t.Fatalf("NewAccessToken: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok.Token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSportCatalogueRequiresAdmin(t *testing.T) {
	e := newTestRouter(t)

	cases := []struct {
		role   string
		method string
		path   string
		want   int
	}{
		{model.RolePlayer, http.MethodPost, "/v1/sports", http.StatusForbidden},
		{model.RolePlayer, http.MethodDelete, "/v1/sports/1", http.StatusForbidden},
		{model.RoleOwner, http.MethodPost, "/v1/sports", http.StatusForbidden},
		{model.RoleOwner, http.MethodDelete, "/v1/sports/1", http.StatusForbidden},
		{"", http.MethodPost, "/v1/sports", http.StatusUnauthorized},
		{"", http.MethodDelete, "/v1/sports/1", http.StatusUnauthorized},
		// Admin tokens pass the role gate and reach the handler,
		// which rejects these requests as malformed before any query.
		{model.RoleAdmin, http.MethodPost, "/v1/sports", http.StatusBadRequest},
		{model.RoleAdmin, http.MethodDelete, "/v1/sports/abc", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := doAs(t, e, tc.role, tc.method, tc.path)
		if rec.Code != tc.want {
			t.Errorf("%s %s as %q: status = %d, want %d", tc.method, tc.path, tc.role, rec.Code, tc.want)
		}
	}
}

func TestAdminRoleStopsAtCatalogue(t *testing.T) {
	e := newTestRouter(t)

	// The player/owner group does not admit ADMIN tokens.
	rec := doAs(t, e, model.RoleAdmin, http.MethodGet, "/v1/games")
	if rec.Code != http.StatusForbidden {
		t.Errorf("GET /v1/games as ADMIN: status = %d, want 403", rec.Code)
	}

	// Players still reach their own routes; malformed input stops the
	// request before any query runs.
	rec = doAs(t, e, model.RolePlayer, http.MethodPost, "/v1/bookings")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST /v1/bookings as PLAYER: status = %d, want 400", rec.Code)
	}
}
