package models

import "github.com/m04kA/bookit-service/internal/domain"

// ExperienceResponse впечатление в ответе API
type ExperienceResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       int64   `json:"price"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// SlotResponse слот в ответе API
type SlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
}

// FromDomainExperience конвертирует domain модель в response
func FromDomainExperience(e *domain.Experience) *ExperienceResponse {
	return &ExperienceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Image:       e.Image,
		Price:       e.Price,
		Duration:    e.Duration,
		Location:    e.Location,
		Rating:      e.Rating,
		Reviews:     e.Reviews,
	}
}

// FromDomainExperienceList конвертирует список впечатлений, nil превращается в пустой список
func FromDomainExperienceList(experiences []*domain.Experience) []*ExperienceResponse {
	result := make([]*ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		result = append(result, FromDomainExperience(e))
	}
	return result
}

// FromDomainSlot конвертирует domain модель слота в response
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date,
		Time:      s.Time,
		Available: s.Available,
		Booked:    s.Booked,
	}
}

// FromDomainSlotList конвертирует список слотов, nil превращается в пустой список
func FromDomainSlotList(slots []*domain.Slot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}
