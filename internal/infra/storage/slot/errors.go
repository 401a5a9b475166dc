package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден у указанного впечатления
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotFullyBooked возвращается, когда в слоте не осталось мест
	ErrSlotFullyBooked = errors.New("slot.repository: slot is fully booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
