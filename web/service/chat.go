package service

import (
	"strings"

	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/database/model"
	"github.com/mindwell-app/mindwell/logger"
)

// chatRule pairs a keyword with its canned reply. Rules are evaluated in
// order; the first match wins.
type chatRule struct {
	Keyword string
	Reply   string
}

var chatRules = []chatRule{
	{
		Keyword: "stress",
		Reply:   "I hear you’re stressed. Try taking deep breaths. Would you like to see relaxation resources?",
	},
	{
		Keyword: "depress",
		Reply:   "I’m sorry you’re feeling down. You’re not alone — talking helps. Want me to connect you to a counselor resource?",
	},
}

const defaultReply = "I’m here to listen. Can you tell me more about how you’re feeling?"

type ChatService struct{}

// ReplyFor maps a message to a reply by case-insensitive keyword match.
func (s *ChatService) ReplyFor(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Reply
		}
	}
	return defaultReply
}

// Respond picks the reply for message and records the exchange under userId.
// A failed insert is logged but never blocks the reply.
func (s *ChatService) Respond(userId int, message string) string {
	reply := s.ReplyFor(message)

	chat := &model.Chat{
		UserId:      userId,
		UserMessage: message,
		Reply:       reply,
	}
	if err := database.GetDB().Create(chat).Error; err != nil {
		logger.Warning("failed to save chat:", err)
	}

	return reply
}

// History returns the user's transcript, newest first.
func (s *ChatService) History(userId int) ([]model.Chat, error) {
	var chats []model.Chat
	err := database.GetDB().
		Where("user_id = ?", userId).
		Order("created_at desc, id desc").
		Find(&chats).
		Error
	return chats, err
}
