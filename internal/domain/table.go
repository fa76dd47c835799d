package domain

// Table физический стол ресторана
// Number уникален в рамках каталога, Size - число посадочных мест
type Table struct {
	Number int64
	Size   int64
}

// Seats возвращает true, если стол рассчитан на указанное число мест
func (t Table) Seats(size int64) bool {
	return t.Size == size
}
