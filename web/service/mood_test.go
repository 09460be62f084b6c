package service

import (
	"testing"
)

func TestMoodListPerUser(t *testing.T) {
	setupTestDB(t)
	s := MoodService{}

	for _, m := range []string{"Happy", "Sad", "Calm"} {
		if err := s.Add(1, m); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	if err := s.Add(2, "Anxious"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	moods, err := s.List(1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(moods) != 3 {
		t.Fatalf("List(1) returned %d rows, expected 3", len(moods))
	}
	// newest first
	expected := []string{"Calm", "Sad", "Happy"}
	for i, m := range moods {
		if m.Mood != expected[i] {
			t.Errorf("moods[%d] = %q, expected %q", i, m.Mood, expected[i])
		}
	}
}

func TestBookingListPerUser(t *testing.T) {
	setupTestDB(t)
	s := BookingService{}

	if err := s.Add(1, "Dr. Rao", "2026-09-10", "09:00"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add(1, "Dr. Mehta", "2026-09-11", "14:00"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add(2, "Dr. Iyer", "2026-09-12", "16:00"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	bookings, err := s.List(1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("List(1) returned %d rows, expected 2", len(bookings))
	}
	if bookings[0].Counselor != "Dr. Mehta" || bookings[1].Counselor != "Dr. Rao" {
		t.Errorf("bookings out of order: %q then %q", bookings[0].Counselor, bookings[1].Counselor)
	}
}
