package services

import (
	"errors"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"
	"github.com/agusyquia/csci42-group4/utils"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

func RegisterUser(username, email, password, firstName, lastName string) (*models.User, error) {
	taken, err := usernameTaken(username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("username", "A user with that username already exists.")
	}
	if email != "" {
		taken, err = emailTaken(email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("email", "A user with that email already exists.")
		}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID)
}

func usernameTaken(username string, excludeID uint) (bool, error) {
	return userFieldTaken("username", username, excludeID)
}

func emailTaken(email string, excludeID uint) (bool, error) {
	return userFieldTaken("email", email, excludeID)
}

func userFieldTaken(column, value string, excludeID uint) (bool, error) {
	q := config.DB.Model(&models.User{}).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
