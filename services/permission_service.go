package services

import (
	"errors"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"gorm.io/gorm"
)

var ErrPermissionNotFound = errors.New("permission not found")

type PermissionService struct {
	repo  repositories.PermissionRepo
	users repositories.UserRepo
}

func NewPermissionService(repos *repositories.Repos) *PermissionService {
	return &PermissionService{repo: repos.Permission, users: repos.User}
}

func (s *PermissionService) ListByUser(userID uint) ([]models.Permission, error) {
	if _, err := s.users.FindByID(userID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(userID)
}

func (s *PermissionService) Assign(input dto.AssignPermissionDTO) (*models.Permission, error) {
	if _, err := s.users.FindByID(input.UserID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	perm := &models.Permission{
		UserID:    input.UserID,
		Module:    input.Module,
		CanCreate: input.CanCreate,
		CanRead:   input.CanRead,
		CanUpdate: input.CanUpdate,
		CanDelete: input.CanDelete,
	}
	return perm, s.repo.Upsert(perm)
}

func (s *PermissionService) Revoke(userID uint, module string) error {
	if _, err := s.repo.Find(userID, module); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPermissionNotFound
	} else if err != nil {
		return err
	}
	return s.repo.Delete(userID, module)
}
