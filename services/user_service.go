package services

import (
	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"
	"github.com/agusyquia/csci42-group4/utils"
)

// User CRUD is deliberately permissive: any authenticated user may read
// or mutate any user row, mirroring the system this replaces. See
// DESIGN.md for the flagged inconsistency with the rest of the scoping.

type UserUpdateInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func ListUsers() ([]models.User, error) {
	users := []models.User{}
	err := config.DB.Order("id").Find(&users).Error
	return users, err
}

func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func UpdateUser(id uint, in UserUpdateInput) (*models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		taken, err := usernameTaken(in.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("username", "A user with that username already exists.")
		}
		user.Username = in.Username
	}
	if in.Email != "" && in.Email != user.Email {
		taken, err := emailTaken(in.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("email", "A user with that email already exists.")
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		hashed, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(id uint) error {
	user, err := GetUser(id)
	if err != nil {
		return err
	}
	return config.DB.Delete(&models.User{}, user.ID).Error
}
