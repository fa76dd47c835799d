package middleware

import (
	"context"
	"net/http"

	"github.com/othmanalikhan-apps/project-aardvark/internal/api/handlers"
)

type contextKey string

const (
	// StaffIDHeader заголовок идентификации сотрудника
	StaffIDHeader = "X-Staff-ID"

	staffIDKey contextKey = "staffID"

	msgMissingStaffID = "требуется заголовок X-Staff-ID"
)

// StaffAuth пропускает только запросы сотрудников ресторана
// Операции над меню и закрытие счетов недоступны гостям
func StaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get(StaffIDHeader)
		if staffID == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext возвращает идентификатор сотрудника из контекста запроса
func StaffIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(staffIDKey).(string)
	return id, ok
}
