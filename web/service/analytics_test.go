package service

import (
	"testing"
)

func TestDashboardStatsEmpty(t *testing.T) {
	setupTestDB(t)

	analytics := AnalyticsService{}
	stats := analytics.GetDashboardStats()

	if len(stats.TopMoods) != 0 {
		t.Errorf("TopMoods = %v, expected empty", stats.TopMoods)
	}
	if stats.TotalChats != 0 || stats.StressChats != 0 || stats.DepressChats != 0 {
		t.Errorf("chat counts = %d/%d/%d, expected zeroes",
			stats.TotalChats, stats.StressChats, stats.DepressChats)
	}
	if stats.TotalBookings != 0 {
		t.Errorf("TotalBookings = %d, expected 0", stats.TotalBookings)
	}
	if stats.TopCounselor != "N/A" {
		t.Errorf("TopCounselor = %q, expected N/A", stats.TopCounselor)
	}
}

func TestDashboardStatsRollup(t *testing.T) {
	setupTestDB(t)

	moods := MoodService{}
	for _, m := range []string{"Happy", "Happy", "Happy", "Sad", "Sad", "Calm", "Anxious", "Stressed", "Tired"} {
		if err := moods.Add(1, m); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	chats := ChatService{}
	chats.Respond(1, "I feel so stressed today")
	chats.Respond(1, "still stressed")
	chats.Respond(2, "I am depressed")
	chats.Respond(2, "hello")

	bookings := BookingService{}
	for _, c := range []string{"Dr. Mehta", "Dr. Mehta", "Dr. Rao"} {
		if err := bookings.Add(1, c, "2026-09-15", "10:00"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	analytics := AnalyticsService{}
	stats := analytics.GetDashboardStats()

	if len(stats.TopMoods) != 5 {
		t.Fatalf("TopMoods has %d entries, expected 5", len(stats.TopMoods))
	}
	if stats.TopMoods[0].Mood != "Happy" || stats.TopMoods[0].Count != 3 {
		t.Errorf("top mood = %v, expected Happy x3", stats.TopMoods[0])
	}
	if stats.TopMoods[1].Mood != "Sad" || stats.TopMoods[1].Count != 2 {
		t.Errorf("second mood = %v, expected Sad x2", stats.TopMoods[1])
	}

	if stats.TotalChats != 4 {
		t.Errorf("TotalChats = %d, expected 4", stats.TotalChats)
	}
	if stats.StressChats != 2 {
		t.Errorf("StressChats = %d, expected 2", stats.StressChats)
	}
	if stats.DepressChats != 1 {
		t.Errorf("DepressChats = %d, expected 1", stats.DepressChats)
	}

	if stats.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, expected 3", stats.TotalBookings)
	}
	if stats.TopCounselor != "Dr. Mehta" {
		t.Errorf("TopCounselor = %q, expected Dr. Mehta", stats.TopCounselor)
	}
}
