package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/playmate/venue-booking/internal/payment"
	"github.com/playmate/venue-booking/internal/service"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: bad input", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: bad signature", service.ErrPayment), http.StatusBadRequest},
		{fmt.Errorf("%w: no such game", service.ErrNotFound), http.StatusNotFound},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrSlotTaken, http.StatusConflict},
		{service.ErrAlreadyJoined, http.StatusConflict},
		{service.ErrAlreadyPaid, http.StatusConflict},
		{service.ErrSportNotOffered, http.StatusNotFound},
		{payment.ErrNotConfigured, http.StatusInternalServerError},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c := testContext()
		if err := serviceError(c, tc.err); err != nil {
			t.Fatalf("serviceError(%v): %v", tc.err, err)
		}
		if got := c.Response().Status; got != tc.code {
			t.Errorf("serviceError(%v): status = %d, want %d", tc.err, got, tc.code)
		}
	}
}

func TestGetUserID(t *testing.T) {
	c := testContext()
	if _, err := getUserID(c); err == nil {
		t.Error("expected error when user_id is absent")
	}

	// JWT claims decode numbers as float64.
	c.Set("user_id", float64(42))
	if id, err := getUserID(c); err != nil || id != 42 {
		t.Errorf("float64 claim: id=%d err=%v", id, err)
	}
	c.Set("user_id", uint64(7))
	if id, err := getUserID(c); err != nil || id != 7 {
		t.Errorf("uint64 value: id=%d err=%v", id, err)
	}
	c.Set("user_id", "19")
	if id, err := getUserID(c); err != nil || id != 19 {
		t.Errorf("string value: id=%d err=%v", id, err)
	}
	c.Set("user_id", "abc")
	if _, err := getUserID(c); err == nil {
		t.Error("expected error for non-numeric string")
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("15")
	if id, err := pathID(c, "id"); err != nil || id != 15 {
		t.Errorf("pathID = %d, %v; want 15", id, err)
	}
	for _, bad := range []string{"0", "-3", "abc", ""} {
		c.SetParamValues(bad)
		if _, err := pathID(c, "id"); err == nil {
			t.Errorf("pathID(%q): expected error", bad)
		}
	}
}
