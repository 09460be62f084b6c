package service

import (
	"testing"
)

func TestReplyFor(t *testing.T) {
	s := ChatService{}

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"stress keyword", "I feel so stressed today", chatRules[0].Reply},
		{"depress keyword", "I am depressed", chatRules[1].Reply},
		{"no keyword", "hello", defaultReply},
		{"uppercase stress", "SO MUCH STRESS", chatRules[0].Reply},
		{"mixed case depress", "DePrEssing week", chatRules[1].Reply},
		{"stress wins over later rules", "stress and depression", chatRules[0].Reply},
		{"empty message", "", defaultReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ReplyFor(tt.message); got != tt.expected {
				t.Errorf("ReplyFor(%q) = %q, expected %q", tt.message, got, tt.expected)
			}
		})
	}
}

func TestRespondRecordsTranscript(t *testing.T) {
	setupTestDB(t)
	s := ChatService{}

	first := s.Respond(1, "I feel so stressed today")
	second := s.Respond(1, "hello")
	s.Respond(2, "someone else's message")

	chats, err := s.History(1)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("History() returned %d rows, expected 2", len(chats))
	}
	// newest first
	if chats[0].UserMessage != "hello" || chats[0].Reply != second {
		t.Errorf("latest chat = %q/%q, expected hello/%q", chats[0].UserMessage, chats[0].Reply, second)
	}
	if chats[1].UserMessage != "I feel so stressed today" || chats[1].Reply != first {
		t.Errorf("earliest chat = %q/%q, expected stressed/%q", chats[1].UserMessage, chats[1].Reply, first)
	}
}
