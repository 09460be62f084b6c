package service

import (
	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/database/model"
)

type MoodService struct{}

func (s *MoodService) Add(userId int, mood string) error {
	entry := &model.Mood{
		UserId: userId,
		Mood:   mood,
	}
	return database.GetDB().Create(entry).Error
}

// List returns the user's mood log, newest first.
func (s *MoodService) List(userId int) ([]model.Mood, error) {
	var moods []model.Mood
	err := database.GetDB().
		Where("user_id = ?", userId).
		Order("created_at desc, id desc").
		Find(&moods).
		Error
	return moods, err
}
