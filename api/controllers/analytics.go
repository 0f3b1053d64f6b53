package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialai/socialai-backend/api/responses"
	"github.com/socialai/socialai-backend/api/validators"
	"github.com/socialai/socialai-backend/internal/analytics"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// AnalyticsRecord ingests one engagement snapshot.
func AnalyticsRecord(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto analytics.RecordDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.Record(r.Context(), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func AnalyticsPerPost(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := validators.PathUUID(chi.URLParam(r, "postId"), "postId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var platform enums.Platform
		if raw := validators.QueryString(r, "platform"); raw != "" {
			platform, err = enums.ParsePlatform(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid platform filter"))
				return
			}
		}

		rows, err := svc.PerPost(r.Context(), postID, platform)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func AnalyticsDashboard(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := validators.QueryUUID(r, "team_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), teamID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}
