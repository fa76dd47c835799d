package get_free_tables

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSlotNotInCatalogue возвращается, когда запрошенное время
	// не входит в каталог слотов ресторана
	ErrSlotNotInCatalogue = errors.New("requested time is not a serving slot")

	// ErrDataIntegrity возвращается, когда слой хранения отдал брони,
	// нарушающие инварианты каталогов (неизвестный стол, дубль брони)
	ErrDataIntegrity = errors.New("booking data integrity violation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
