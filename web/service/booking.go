package service

import (
	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/database/model"
)

type BookingService struct{}

func (s *BookingService) Add(userId int, counselor, date, timeSlot string) error {
	booking := &model.Booking{
		UserId:    userId,
		Counselor: counselor,
		Date:      date,
		Time:      timeSlot,
	}
	return database.GetDB().Create(booking).Error
}

// List returns the user's bookings, newest first.
func (s *BookingService) List(userId int) ([]model.Booking, error) {
	var bookings []model.Booking
	err := database.GetDB().
		Where("user_id = ?", userId).
		Order("created_at desc, id desc").
		Find(&bookings).
		Error
	return bookings, err
}
