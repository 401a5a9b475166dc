package create_booking

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено
	ErrExperienceNotFound = errors.New("create_booking: experience not found")

	// ErrSlotNotFound возвращается, когда у впечатления нет такого слота
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotFullyBooked возвращается, когда в слоте не осталось мест
	ErrSlotFullyBooked = errors.New("create_booking: slot is fully booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
