package services

import (
	"errors"
	"time"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/middleware"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type UserService struct {
	repo repositories.UserRepo
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repo: repos.User}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) (*models.User, error) {
	_, err := s.repo.FindByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	user := &models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     string(models.UserRoleEditor),
		Active:   true,
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	return user, s.repo.Save(user)
}

func (s *UserService) LoginUser(username, password string) (models.User, string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !user.Active {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) ListUsers(q dto.ListQuery) ([]models.User, int64, error) {
	return s.repo.List(q)
}

func (s *UserService) FindUserByID(id uint) (models.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserInput, actingAdmin bool) (models.User, error) {
	user, err := s.FindUserByID(id)
	if err != nil {
		return models.User{}, err
	}

	if input.Password != nil {
		// admins may reset passwords without the old one
		if !actingAdmin {
			if input.OldPassword == nil {
				return models.User{}, ErrMissingOldPassword
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
				return models.User{}, ErrIncorrectPassword
			}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}

	if input.Email != nil {
		user.Email = input.Email
	}
	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Role != nil && actingAdmin {
		user.Role = *input.Role
	}
	if input.Active != nil && actingAdmin {
		user.Active = *input.Active
	}

	return user, s.repo.Save(&user)
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.FindUserByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
