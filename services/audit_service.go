package services

import (
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
)

type AuditService struct {
	repo repositories.AuditRepo
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repo: repos.Audit}
}

func (s *AuditService) List(q dto.AuditListQuery) ([]models.AuditLog, int64, error) {
	return s.repo.List(q)
}
