package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"vidstore/internal/domain"
	"vidstore/internal/service"
)

const contentTypeJSON = "application/json"

type HTTPHandler struct {
	svc *service.CatalogService
}

func NewHTTPHandler(svc *service.CatalogService) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /videos", h.handleListCatalog)
	mux.HandleFunc("GET /videos/{category}", h.handleListVideos)
	mux.HandleFunc("POST /videos/{category}", h.handleAddVideo)
	mux.HandleFunc("PATCH /videos/{category}/{index}/thumbnail", h.handleSetVideoThumbnail)
	mux.HandleFunc("DELETE /videos/{category}/{index}", h.handleDeleteVideo)
	mux.HandleFunc("GET /categories", h.handleListCategories)
	mux.HandleFunc("POST /categories", h.handleCreateCategory)
	mux.HandleFunc("PATCH /categories/{name}/thumbnail", h.handleSetCategoryThumbnail)
	mux.HandleFunc("DELETE /categories/{name}", h.handleDeleteCategory)
	mux.HandleFunc("GET /health", h.handleHealth)
}

type addVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
}

type thumbnailRequest struct {
	Thumbnail string `json:"thumbnail"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type videosResponse struct {
	OK     bool           `json:"ok"`
	Videos []domain.Video `json:"videos"`
}

type categoriesResponse struct {
	OK         bool     `json:"ok"`
	Categories []string `json:"categories"`
}

type thumbnailResponse struct {
	OK        bool   `json:"ok"`
	Thumbnail string `json:"thumbnail"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (h *HTTPHandler) handleListCatalog(w http.ResponseWriter, r *http.Request) {
	catalog := h.svc.GetCatalog(r.Context())
	h.writeJSON(w, http.StatusOK, catalog)
}

func (h *HTTPHandler) handleListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ListVideos(r.Context(), r.PathValue("category"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, videos)
}

func (h *HTTPHandler) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	var req addVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	videos, err := h.svc.AddVideo(r.Context(), r.PathValue("category"), domain.Video{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, videosResponse{OK: true, Videos: videos})
}

func (h *HTTPHandler) handleSetVideoThumbnail(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req thumbnailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	videos, err := h.svc.SetVideoThumbnail(r.Context(), r.PathValue("category"), index, req.Thumbnail)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, videosResponse{OK: true, Videos: videos})
}

func (h *HTTPHandler) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	videos, err := h.svc.DeleteVideo(r.Context(), r.PathValue("category"), index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, videosResponse{OK: true, Videos: videos})
}

func (h *HTTPHandler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ListCategories(r.Context()))
}

func (h *HTTPHandler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	categories, err := h.svc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, categoriesResponse{OK: true, Categories: categories})
}

func (h *HTTPHandler) handleSetCategoryThumbnail(w http.ResponseWriter, r *http.Request) {
	var req thumbnailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	thumbnail, err := h.svc.SetCategoryThumbnail(r.Context(), r.PathValue("name"), req.Thumbnail)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, thumbnailResponse{OK: true, Thumbnail: thumbnail})
}

func (h *HTTPHandler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.DeleteCategory(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, categoriesResponse{OK: true, Categories: categories})
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// parseIndex reads the {index} path segment. Anything that does not parse as
// a non-negative integer resolves to video-not-found, like an out-of-range
// index would.
func parseIndex(r *http.Request) (int, error) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %s[%s]", domain.ErrVideoNotFound, r.PathValue("category"), raw)
	}
	return index, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("unmarshalling json: %w", err)
	}
	return nil
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrCategoryExists):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrCategoryNotFound), errors.Is(err, domain.ErrVideoNotFound):
		status = http.StatusNotFound
	}
	h.writeJSON(w, status, errorResponse{OK: false, Error: err.Error()})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithField("error", err).Error("failed to encode json response")
	}
}
