package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired accepts only verified access tokens and stores the session
// they describe in the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != "access" || !ok {
			response.Unauthorized(w, "Invalid token")
			return
		}

		userID, _ := claims["user_id"].(string)
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)

		session := user.Session{UserID: userID, Name: name, Role: user.Role(role)}
		if userID == "" {
			response.HandleError(w, user.ErrNoSession)
			return
		}
		if !session.Role.IsValid() {
			response.HandleError(w, user.ErrInvalidRole)
			return
		}

		next.ServeHTTP(w, r.WithContext(user.WithSession(r.Context(), session)))
	})
}
