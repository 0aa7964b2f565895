package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RestaurantService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"

	// HeaderUserID идентификатор пользователя, проставляется API-гейтвеем
	HeaderUserID = "X-User-ID"

	// HeaderUserRole роль пользователя, проставляется API-гейтвеем
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Auth проверяет наличие корректного X-User-ID и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью admin
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderUserRole) != roleAdmin {
			handlers.RespondError(w, http.StatusForbidden, "доступ только для администратора")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext достаёт идентификатор пользователя, положенный Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
