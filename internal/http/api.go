package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hobbyhub/internal/auth"
	"hobbyhub/internal/catalog"
	"hobbyhub/internal/domain"
	"hobbyhub/internal/metrics"
	"hobbyhub/internal/service"
	"hobbyhub/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	bookmarks service.BookmarkService
	issuer    *auth.TokenIssuer
	storage   storage.Service
	bucket    string
	imageTTL  time.Duration
}

func NewHandler(users service.UserService, bookmarks service.BookmarkService, issuer *auth.TokenIssuer, store storage.Service, bucket string, imageTTL time.Duration) *Handler {
	return &Handler{
		users:     users,
		bookmarks: bookmarks,
		issuer:    issuer,
		storage:   store,
		bucket:    bucket,
		imageTTL:  imageTTL,
	}
}

// RegisterRoutes mounts the API. The loginLimiter is optional; pass nil
// when no Redis is configured.
func (h *Handler) RegisterRoutes(router *gin.Engine, loginLimiter gin.HandlerFunc) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/signup", h.signup)
		if loginLimiter != nil {
			api.POST("/auth/login", loginLimiter, h.login)
		} else {
			api.POST("/auth/login", h.login)
		}

		api.GET("/hobbies", h.listHobbies)
		api.GET("/hobbies/:id", h.getHobby)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	authed := router.Group("/api")
	authed.Use(authMiddleware(h.issuer))
	{
		authed.GET("/me", h.me)
		authed.GET("/bookmarks", h.listBookmarks)
		authed.GET("/bookmarks/check", h.checkBookmark)
		authed.POST("/bookmarks/toggle", h.toggleBookmark)
		authed.DELETE("/bookmarks/remove", h.removeBookmark)
		authed.GET("/bookmarks/stats", h.bookmarkStats)
	}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=2,max=20"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type bookmarkRequest struct {
	HobbyID string `json:"hobbyId" binding:"required"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncSignup("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			metrics.IncSignup("bad_request")
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Message, "field": vErr.Field})
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
			metrics.IncSignup("conflict")
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
		default:
			metrics.IncSignup("error")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	// The session token is issued right away so the client can complete
	// sign-in without resending the password.
	token, err := h.issuer.Generate(user)
	if err != nil {
		metrics.IncSignup("error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not issue session token"})
		return
	}

	metrics.IncSignup("success")
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "account created",
		"user":    userToResponse(user),
		"token":   token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			metrics.IncLogin("bad_request")
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Message, "field": vErr.Field})
		case errors.Is(err, service.ErrUnknownEmail), errors.Is(err, service.ErrInvalidPassword):
			// Message text distinguishes the two cases so the client can
			// steer the user toward sign-up or a retry.
			metrics.IncLogin("unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		default:
			metrics.IncLogin("error")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	token, err := h.issuer.Generate(user)
	if err != nil {
		metrics.IncLogin("error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not issue session token"})
		return
	}

	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userToResponse(user),
		"token":   token,
	})
}

func (h *Handler) me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userToResponse(user)})
}

type listHobbiesQuery struct {
	Category string `form:"category" binding:"omitempty,category"`
}

func (h *Handler) listHobbies(c *gin.Context) {
	var q listHobbiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown category"})
		return
	}

	hobbies := catalog.ByCategory(domain.Category(q.Category))
	resp := make([]HobbyResponse, len(hobbies))
	for i := range hobbies {
		resp[i] = h.hobbyToResponse(c.Request.Context(), hobbies[i])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}

func (h *Handler) getHobby(c *gin.Context) {
	hobby, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "hobby not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.hobbyToResponse(c.Request.Context(), hobby)})
}

func (h *Handler) listBookmarks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
		return
	}

	hobbies, err := h.bookmarks.ListWithDetails(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	resp := make([]BookmarkedHobbyResponse, len(hobbies))
	for i := range hobbies {
		resp[i] = h.bookmarkedToResponse(c.Request.Context(), hobbies[i])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}

func (h *Handler) checkBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
		return
	}

	hobbyID := c.Query("hobbyId")
	if hobbyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "hobbyId is required"})
		return
	}

	bookmarked, err := h.bookmarks.IsBookmarked(c.Request.Context(), userID, hobbyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "isBookmarked": bookmarked})
}

func (h *Handler) toggleBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
		return
	}

	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "hobbyId is required"})
		return
	}

	bookmarked, err := h.bookmarks.Toggle(c.Request.Context(), userID, req.HobbyID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownHobby) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	message := "removed from bookmarks"
	state := "removed"
	if bookmarked {
		message = "added to bookmarks"
		state = "added"
	}
	metrics.IncToggle(state)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"isBookmarked": bookmarked,
		"message":      message,
	})
}

func (h *Handler) removeBookmark(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
		return
	}

	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "hobbyId is required"})
		return
	}

	if err := h.bookmarks.Remove(c.Request.Context(), userID, req.HobbyID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "removed from bookmarks"})
}

func (h *Handler) bookmarkStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "login required"})
		return
	}

	stats, err := h.bookmarks.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stats":         stats.PerCategory,
			"totalCount":    stats.TotalCount,
			"categoryCount": stats.CategoryCount,
		},
	})
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type HobbyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

type BookmarkedHobbyResponse struct {
	HobbyResponse
	BookmarkedAt string `json:"bookmarked_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) hobbyToResponse(ctx context.Context, hobby domain.Hobby) HobbyResponse {
	return HobbyResponse{
		ID:          hobby.ID,
		Title:       hobby.Title,
		Description: hobby.Description,
		ImageURL:    h.resolveImageURL(ctx, hobby.ImageKey),
		Category:    string(hobby.Category),
	}
}

func (h *Handler) bookmarkedToResponse(ctx context.Context, b domain.BookmarkedHobby) BookmarkedHobbyResponse {
	return BookmarkedHobbyResponse{
		HobbyResponse: h.hobbyToResponse(ctx, b.Hobby),
		BookmarkedAt:  b.BookmarkedAt.Format(time.RFC3339),
	}
}

// resolveImageURL presigns the thumbnail key when object storage is
// configured and otherwise falls back to a static path.
func (h *Handler) resolveImageURL(ctx context.Context, key string) string {
	if h.storage == nil || h.bucket == "" {
		return "/" + key
	}
	url, err := h.storage.ObjectURL(ctx, h.bucket, key, h.imageTTL)
	if err != nil {
		return "/" + key
	}
	return url
}
