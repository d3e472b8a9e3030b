package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bloggydev/bloggy/internal/api/middleware"
	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/logging"
	"github.com/bloggydev/bloggy/internal/service"
)

type PostHandler struct {
	blog *service.BlogService
}

func NewPostHandler(blog *service.BlogService) *PostHandler {
	return &PostHandler{blog: blog}
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Title) < 1 || len(req.Title) > 255 {
		respondError(w, http.StatusBadRequest, "title must be between 1 and 255 characters")
		return
	}
	if len(req.Content) < 1 || len(req.Content) > 4096 {
		respondError(w, http.StatusBadRequest, "content must be between 1 and 4096 characters")
		return
	}

	post, err := h.blog.CreatePost(r.Context(), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	}, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		logging.FromContext(r.Context()).Error("post creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.blog.GetPost(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "blog post not found")
			return
		}
		logging.FromContext(r.Context()).Error("post lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("post list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}
