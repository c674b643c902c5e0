package service

import (
	"context"
	"fmt"

	"github.com/parcelease/admin-dashboard/internal/core/domain"
	"github.com/parcelease/admin-dashboard/internal/core/ports"
)

type FAQService struct {
	repo ports.FAQRepository
}

func NewFAQService(repo ports.FAQRepository) *FAQService {
	return &FAQService{repo: repo}
}

func (s *FAQService) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	faqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}
