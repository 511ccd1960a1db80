package service

import (
	"context"

	"github.com/lumenstudio/backend/internal/model"
	"github.com/lumenstudio/backend/internal/repository"
)

// CaseStudyService reads the case-study showcase.
type CaseStudyService interface {
	List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error)
}

type caseStudyService struct {
	repo repository.CaseStudyRepository
}

// NewCaseStudyService creates a CaseStudyService.
func NewCaseStudyService(repo repository.CaseStudyRepository) CaseStudyService {
	return &caseStudyService{repo: repo}
}

func (s *caseStudyService) List(ctx context.Context, q model.ListQuery) ([]*model.CaseStudy, error) {
	return s.repo.List(ctx, q)
}
