package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// CreateDocument saves an inline text document.
func (g *Gateway) CreateDocument(ctx context.Context, input CreateDocumentInput) (*Document, error) {
	var out Document
	if err := g.do(ctx, http.MethodPost, "/api/documents/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument streams a file as a new document. name is the display name,
// fileName the original file name sent in the multipart part.
func (g *Gateway) UploadDocument(ctx context.Context, teamID uuid.UUID, docType, name, fileName string, file io.Reader) (*Document, error) {
	fields := map[string]string{
		"team_id": teamID.String(),
		"type":    docType,
		"name":    name,
	}

	var out Document
	if err := g.doMultipart(ctx, "/api/documents/upload", fields, fileName, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments returns documents matching the filters.
func (g *Gateway) ListDocuments(ctx context.Context, filters DocumentFilters) ([]Document, error) {
	query := url.Values{}
	if filters.TeamID != uuid.Nil {
		query.Set("team_id", filters.TeamID.String())
	}
	if filters.UploadedBy != uuid.Nil {
		query.Set("uploaded_by", filters.UploadedBy.String())
	}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.IsProcessed != nil {
		query.Set("is_processed", strconv.FormatBool(*filters.IsProcessed))
	}

	var out []Document
	if err := g.do(ctx, http.MethodGet, "/api/documents/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDocument fetches one document by ID.
func (g *Gateway) GetDocument(ctx context.Context, documentID uuid.UUID) (*Document, error) {
	var out Document
	if err := g.do(ctx, http.MethodGet, "/api/documents/"+documentID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes a document and its stored file, if any.
func (g *Gateway) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/documents/"+documentID.String(), nil, nil, nil)
}
