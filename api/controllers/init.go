package controllers

import (
	"net/http"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/internal/bootstrap"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// Init ensures the store is ready, seeding it on first use, and returns the
// full snapshot.
func Init(svc bootstrap.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bootstrap service unavailable"))
			return
		}
		snap, err := svc.Initialize(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}
