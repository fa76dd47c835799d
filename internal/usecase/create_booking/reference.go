package create_booking

import (
	"context"
	"fmt"
	"math/rand"
)

const (
	referenceLetters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceDigits    = "0123456789"
	maxReferenceRetries = 10
)

// generateReference генерирует номер брони вида "ABC1234567":
// три заглавные буквы и семь цифр
func generateReference() string {
	buf := make([]byte, 0, 10)
	for i := 0; i < 3; i++ {
		buf = append(buf, referenceLetters[rand.Intn(len(referenceLetters))])
	}
	for i := 0; i < 7; i++ {
		buf = append(buf, referenceDigits[rand.Intn(len(referenceDigits))])
	}
	return string(buf)
}

// uniqueReference подбирает номер брони, не занятый в хранилище
// Пространство номеров 26^3 * 10^7, коллизии крайне редки, но проверка
// обязательна: номер - единственный идентификатор брони для клиента
func (uc *UseCase) uniqueReference(ctx context.Context) (string, error) {
	for i := 0; i < maxReferenceRetries; i++ {
		ref := generateReference()

		exists, err := uc.bookingRepo.ReferenceExists(ctx, ref)
		if err != nil {
			return "", fmt.Errorf("%w: failed to check reference uniqueness: %v", ErrInternal, err)
		}
		if !exists {
			return ref, nil
		}
	}
	return "", fmt.Errorf("%w: could not generate unique reference after %d attempts", ErrInternal, maxReferenceRetries)
}
