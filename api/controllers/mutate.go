package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/api/validators"
	"github.com/qawafel/crm-backend/internal/gateway"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// MutateRequest is the envelope every write travels in.
type MutateRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// Mutate dispatches one action to the gateway.
func Mutate(svc gateway.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "mutation service unavailable"))
			return
		}

		var body MutateRequest
		if err := validators.DecodeJSONBody(w, r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithAction(ctx, body.Action)
		}
		if err := svc.Dispatch(ctx, body.Action, body.Payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteAck(w)
	}
}
