package controllers

import (
	"net/http"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/api/validators"
	"github.com/qawafel/crm-backend/internal/intake"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

const maxTokenLen = 256

// GetLeadByToken serves the public form its lead.
func GetLeadByToken(svc intake.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intake service unavailable"))
			return
		}
		lead, err := svc.GetLeadByToken(r.Context(), validators.QueryString(r, "token", maxTokenLen))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

// UpdateLeadFromForm records the two intake fields for the token's lead.
func UpdateLeadFromForm(svc intake.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intake service unavailable"))
			return
		}

		var body intake.Submission
		if err := validators.DecodeJSONBody(w, r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.Token = validators.SanitizeString(body.Token, maxTokenLen)

		if err := svc.UpdateLeadFromToken(r.Context(), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteAck(w)
	}
}
