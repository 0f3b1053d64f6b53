package controllers

import (
	"net/http"

	"github.com/socialai/socialai-backend/api/responses"
	"github.com/socialai/socialai-backend/api/validators"
	"github.com/socialai/socialai-backend/internal/ai"
	"github.com/socialai/socialai-backend/pkg/logger"
)

func AIGenerate(gen ai.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto ai.GenerateContentDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := gen.GenerateContent(r.Context(), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, content)
	}
}

func AIGenerateImage(gen ai.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto ai.GenerateImageDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		image, err := gen.GenerateImage(r.Context(), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, image)
	}
}

func AIEnhance(gen ai.Generator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto ai.EnhanceContentDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		enhanced, err := gen.EnhanceContent(r.Context(), dto)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, enhanced)
	}
}
