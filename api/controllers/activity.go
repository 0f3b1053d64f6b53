package controllers

import (
	"net/http"

	"github.com/socialai/socialai-backend/api/responses"
	"github.com/socialai/socialai-backend/api/validators"
	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// ActivityList exposes the audit trail, filterable by actor, entity type, and
// action.
func ActivityList(svc activitylog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := activitylog.ListFilters{
			EntityType: validators.QueryString(r, "entity_type"),
			Action:     validators.QueryString(r, "action"),
		}

		userID, err := validators.QueryUUID(r, "user_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.UserID = userID

		entries, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}
