package service

import (
	"Curatia/internal/engine"
	"Curatia/internal/repository"
	"context"
)

type RotationService interface {
	// GetRotationSuggestion 分析最近几期精选位的曝光公平性并给出下一期建议分类
	GetRotationSuggestion(ctx context.Context, windowSize int) (*engine.RotationResult, error)
}

type rotationServiceImpl struct {
	slotRepo     repository.FeaturedSlotRepo
	categoryRepo repository.CategoryRepo
}

func NewRotationService(slotRepo repository.FeaturedSlotRepo, categoryRepo repository.CategoryRepo) RotationService {
	return &rotationServiceImpl{slotRepo: slotRepo, categoryRepo: categoryRepo}
}

func (s *rotationServiceImpl) GetRotationSuggestion(ctx context.Context, windowSize int) (*engine.RotationResult, error) {
	if windowSize <= 0 {
		windowSize = engine.DefaultRotationWindow
	}

	categories, err := s.categoryRepo.GetActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]uint64, 0, len(categories))
	for _, c := range categories {
		active = append(active, c.ID)
	}

	slots, err := s.slotRepo.GetRecentSlots(ctx, windowSize)
	if err != nil {
		return nil, err
	}
	recent := make([]engine.SlotPlacement, 0, len(slots))
	for _, slot := range slots {
		recent = append(recent, engine.SlotPlacement{
			SlotID:     slot.ID,
			CategoryID: slot.CategoryID,
			StartAt:    slot.StartAt,
			EndAt:      slot.EndAt,
		})
	}

	result := engine.AnalyzeRotation(recent, active, windowSize)
	return &result, nil
}
