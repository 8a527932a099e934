package service

import (
	"errors"
	"testing"
	"time"
)

func validRequest() *ReserveRequest {
	start := time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)
	return &ReserveRequest{
		SportID:       1,
		VenueID:       2,
		SlotID:        3,
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		HostUserID:    4,
		Price:         900,
	}
}

func TestValidateReserveAcceptsValid(t *testing.T) {
	if err := ValidateReserve(validRequest()); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
	req := validRequest()
	req.Payment = &PaymentAssertion{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig", Amount: 900}
	if err := ValidateReserve(req); err != nil {
		t.Errorf("valid paid request rejected: %v", err)
	}
}

func TestValidateReserveMissingFields(t *testing.T) {
	mutations := map[string]func(*ReserveRequest){
		"sport":      func(r *ReserveRequest) { r.SportID = 0 },
		"venue":      func(r *ReserveRequest) { r.VenueID = 0 },
		"slot":       func(r *ReserveRequest) { r.SlotID = 0 },
		"host":       func(r *ReserveRequest) { r.HostUserID = 0 },
		"start":      func(r *ReserveRequest) { r.StartDatetime = time.Time{} },
		"end":        func(r *ReserveRequest) { r.EndDatetime = time.Time{} },
		"price zero": func(r *ReserveRequest) { r.Price = 0 },
		"price neg":  func(r *ReserveRequest) { r.Price = -10 },
	}
	for name, mutate := range mutations {
		req := validRequest()
		mutate(req)
		err := ValidateReserve(req)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: error %v is not a validation error", name, err)
		}
	}
}

func TestValidateReserveRejectsInvertedRange(t *testing.T) {
	req := validRequest()
	req.EndDatetime = req.StartDatetime
	if err := ValidateReserve(req); !errors.Is(err, ErrValidation) {
		t.Errorf("equal start/end: got %v, want validation error", err)
	}
	req.EndDatetime = req.StartDatetime.Add(-time.Hour)
	if err := ValidateReserve(req); !errors.Is(err, ErrValidation) {
		t.Errorf("end before start: got %v, want validation error", err)
	}
}

func TestValidateReserveRejectsPartialPayment(t *testing.T) {
	partials := []PaymentAssertion{
		{PaymentID: "pay_1", Signature: "sig", Amount: 900},
		{OrderID: "order_1", Signature: "sig", Amount: 900},
		{OrderID: "order_1", PaymentID: "pay_1", Amount: 900},
		{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
	}
	for i, p := range partials {
		req := validRequest()
		assertion := p
		req.Payment = &assertion
		if err := ValidateReserve(req); !errors.Is(err, ErrValidation) {
			t.Errorf("partial payment %d: got %v, want validation error", i, err)
		}
	}
}

func TestConflictSentinelsWrapConflict(t *testing.T) {
	for _, err := range []error{ErrSlotTaken, ErrAlreadyJoined, ErrAlreadyPaid} {
		if !errors.Is(err, ErrConflict) {
			t.Errorf("%v does not wrap the conflict sentinel", err)
		}
	}
	if !errors.Is(ErrSportNotOffered, ErrNotFound) {
		t.Errorf("%v does not wrap the not-found sentinel", ErrSportNotOffered)
	}
}
