package services

import (
	"errors"
	"testing"

	"github.com/connect2study/server/internal/dto"
)

func TestMaterialCreateRequiresSessionOwnership(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	materials := NewMaterialService(db)

	session := seedApprovedSession(t, sessions, 10)

	req := &dto.MaterialRequest{SessionID: session.ID.String(), Title: "Slides"}
	if _, err := materials.Create("imposter@x.com", req); !errors.Is(err, ErrNotSessionOwner) {
		t.Fatalf("err = %v, want ErrNotSessionOwner", err)
	}

	material, err := materials.Create("t@x.com", req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if material.SessionID != session.ID {
		t.Errorf("session id = %v, want %v", material.SessionID, session.ID)
	}
}

func TestMaterialsVisibleOnlyForBookedSessions(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	bookings := NewBookingService(db)
	materials := NewMaterialService(db)

	booked := seedApprovedSession(t, sessions, 10)
	other := seedApprovedSession(t, sessions, 10)

	for _, id := range []string{booked.ID.String(), other.ID.String()} {
		if _, err := materials.Create("t@x.com", &dto.MaterialRequest{SessionID: id, Title: "Notes"}); err != nil {
			t.Fatalf("create material: %v", err)
		}
	}

	if _, err := bookings.Book(booked.ID, "s@x.com"); err != nil {
		t.Fatalf("book: %v", err)
	}

	visible, err := materials.ListForStudent("s@x.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(visible) != 1 || visible[0].SessionID != booked.ID {
		t.Fatalf("unexpected materials: %+v", visible)
	}
}
