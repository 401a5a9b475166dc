package catalog

import (
	"context"
	"errors"
	"fmt"

	experienceRepo "github.com/m04kA/bookit-service/internal/infra/storage/experience"
	"github.com/m04kA/bookit-service/internal/service/catalog/models"
)

// Service сервис чтения каталога впечатлений и слотов
type Service struct {
	experienceRepo ExperienceRepository
	slotRepo       SlotRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(experienceRepo ExperienceRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		logger:         logger,
	}
}

// ListExperiences возвращает все впечатления в порядке ID
func (s *Service) ListExperiences(ctx context.Context) ([]*models.ExperienceResponse, error) {
	experiences, err := s.experienceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListExperiences: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExperiences - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListExperiences: fetched %d experiences", len(experiences))
	return models.FromDomainExperienceList(experiences), nil
}

// GetExperience возвращает впечатление по ID
func (s *Service) GetExperience(ctx context.Context, id int64) (*models.ExperienceResponse, error) {
	experience, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			s.logger.Warn("GetExperience: experience id=%d not found", id)
			return nil, ErrExperienceNotFound
		}
		s.logger.Error("GetExperience: repository error for experience id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetExperience - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExperience(experience), nil
}

// ListSlots возвращает слоты впечатления.
// Для неизвестного впечатления возвращается пустой список, а не ошибка.
func (s *Service) ListSlots(ctx context.Context, experienceID int64) ([]*models.SlotResponse, error) {
	slots, err := s.slotRepo.ListByExperience(ctx, experienceID)
	if err != nil {
		s.logger.Error("ListSlots: repository error for experience id=%d: %v", experienceID, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: fetched %d slots for experience id=%d", len(slots), experienceID)
	return models.FromDomainSlotList(slots), nil
}
