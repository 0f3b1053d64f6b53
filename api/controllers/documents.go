package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/api/middleware"
	"github.com/socialai/socialai-backend/api/responses"
	"github.com/socialai/socialai-backend/api/validators"
	"github.com/socialai/socialai-backend/internal/documents"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

func DocumentCreate(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto documents.CreateDocumentDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		document, err := svc.Create(r.Context(), middleware.UserIDFromContext(r.Context()), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, document)
	}
}

// DocumentUpload accepts a multipart form with name, type, team_id, and file
// fields.
func DocumentUpload(svc documents.Service, maxBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		docType, err := enums.ParseDocumentType(r.FormValue("type"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid document type"))
			return
		}
		teamID, err := uuid.Parse(r.FormValue("team_id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "team_id must be a uuid"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer func() { _ = file.Close() }()

		name := r.FormValue("name")
		if name == "" {
			name = header.Filename
		}

		document, err := svc.Upload(r.Context(), middleware.UserIDFromContext(r.Context()), documents.UploadDocumentDTO{
			Name:     name,
			Type:     docType,
			TeamID:   teamID,
			Filename: header.Filename,
			File:     file,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, document)
	}
}

func DocumentList(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filters documents.ListFilters

		teamID, err := validators.QueryUUID(r, "team_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.TeamID = teamID

		uploadedBy, err := validators.QueryUUID(r, "uploaded_by")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.UploadedBy = uploadedBy

		if raw := validators.QueryString(r, "type"); raw != "" {
			docType, err := enums.ParseDocumentType(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type filter"))
				return
			}
			filters.Type = docType
		}
		isProcessed, err := validators.QueryBool(r, "is_processed")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters.IsProcessed = isProcessed

		list, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func DocumentDetail(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathUUID(chi.URLParam(r, "documentId"), "documentId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		document, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, document)
	}
}

func DocumentDelete(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathUUID(chi.URLParam(r, "documentId"), "documentId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), middleware.UserIDFromContext(r.Context()), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
