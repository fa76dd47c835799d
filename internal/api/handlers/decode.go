package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodySize предел размера тела запроса, 1 MiB
const maxBodySize = 1 << 20

// DecodeJSON читает JSON тело запроса в dst
// Неизвестные поля отклоняются
func DecodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}
