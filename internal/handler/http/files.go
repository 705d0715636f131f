package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type FilesHandler interface {
	// Serve streams a saved report or export
	Serve(w http.ResponseWriter, r *http.Request)
}

type filesHandlerImpl struct {
	storage storage.FileStorage
}

func NewFilesHandler(fileStorage storage.FileStorage) FilesHandler {
	return &filesHandlerImpl{storage: fileStorage}
}

// Serve handles GET /exports/*
func (h *filesHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	file, err := h.storage.Open(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(name)}))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, file); err != nil {
		slog.Error("failed to stream file", "file", name, "error", err)
	}
}
