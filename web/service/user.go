package service

import (
	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/database/model"
	"github.com/mindwell-app/mindwell/logger"
	"github.com/mindwell-app/mindwell/util/crypto"
)

type UserService struct{}

// Register creates a new account. The insert is atomic: duplicate usernames
// and emails are rejected by the unique indexes, not by a prior lookup, so
// two simultaneous registrations cannot both win.
func (s *UserService) Register(username, email, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := db.Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Authenticate verifies the password for the account registered under email.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
