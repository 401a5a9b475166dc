package domain

import (
	"fmt"
	"strings"
)

// Experience represents a bookable activity in the catalog
type Experience struct {
	ID          int64
	Title       string
	Description string
	Image       string
	Price       int64 // integer currency units
	Duration    string
	Location    string
	Rating      float64
	Reviews     int
}

// NewExperience builds an experience and checks its invariants
func NewExperience(
	id int64,
	title, description, image string,
	price int64,
	duration, location string,
	rating float64,
	reviews int,
) (*Experience, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidExperience)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidExperience)
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("%w: rating %.1f out of range [%.1f, %.1f]", ErrInvalidExperience, rating, MinRating, MaxRating)
	}
	if reviews < 0 {
		return nil, fmt.Errorf("%w: reviews must not be negative", ErrInvalidExperience)
	}

	return &Experience{
		ID:          id,
		Title:       title,
		Description: description,
		Image:       image,
		Price:       price,
		Duration:    duration,
		Location:    location,
		Rating:      rating,
		Reviews:     reviews,
	}, nil
}
