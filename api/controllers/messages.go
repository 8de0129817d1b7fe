package controllers

import (
	"net/http"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/api/validators"
	"github.com/qawafel/crm-backend/internal/messaging"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// GeneratedMessage is the body returned by GenerateMessage.
type GeneratedMessage struct {
	Message string `json:"message"`
}

func GenerateMessage(svc messaging.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "messaging service unavailable"))
			return
		}

		var body messaging.Request
		if err := validators.DecodeJSONBody(w, r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := svc.GenerateMessage(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, GeneratedMessage{Message: msg})
	}
}
