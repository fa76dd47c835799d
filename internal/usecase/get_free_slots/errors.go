package get_free_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDataIntegrity возвращается, когда слой хранения отдал брони,
	// нарушающие инварианты каталогов (неизвестный стол/слот, дубль брони)
	ErrDataIntegrity = errors.New("booking data integrity violation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
