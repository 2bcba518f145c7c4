package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrDuplicateUsername:  {http.StatusUnprocessableEntity, app.MsgUsernameTaken},
	service.ErrRecipeNotSaved:     {http.StatusUnprocessableEntity, app.MsgRecipeNotSaved},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrUnauthenticated:    {http.StatusUnauthorized, app.MsgNotLoggedIn},
	service.ErrOwnerNotFound:      {http.StatusNotFound, app.MsgUserNotFound},
}

// statusFromError returns the status code and the client-facing messages for
// err. Validation errors carry their own messages; unknown errors become a
// generic 500.
func statusFromError(err error) (int, []string) {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusUnprocessableEntity, vErr.Messages
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, []string{resp.message}
		}
	}

	return http.StatusInternalServerError, []string{app.MsgInternalServerError}
}

// writeError maps err to a response. Internal errors are logged with their
// details, which never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, messages := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteErrors(w, status, messages...)
}
