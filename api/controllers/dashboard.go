package controllers

import (
	"net/http"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/dashboard"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

func Dashboard(svc bootstrap.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bootstrap service unavailable"))
			return
		}
		snap, err := svc.Load(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard.Compute(snap))
	}
}
