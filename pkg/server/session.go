package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-sigstudio/pkg/state"
)

// session returns the repository scoped to the caller's cookie, issuing a
// fresh id when the cookie is missing or not a UUID.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *state.Repository {
	if cookie, err := r.Cookie(s.opts.CookieName); err == nil {
		if id, err := uuid.Parse(strings.TrimSpace(cookie.Value)); err == nil {
			return s.repo.ForSession(id.String())
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return s.repo.ForSession(id)
}
