package profile

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"onesat-market/internal/auth"
	"onesat-market/internal/httpx"
	"onesat-market/internal/logger"
	"onesat-market/internal/session"
)

type Handler struct {
	directory *Directory
}

func NewHandler(directory *Directory) *Handler {
	return &Handler{directory: directory}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/profile/:handle", h.get)
}

type response struct {
	Success bool         `json:"success"`
	Profile auth.Profile `json:"profile"`
	Known   bool         `json:"known"`
	IsOwner bool         `json:"isOwner"`
}

// get godoc
//
//	@Summary		Public profile
//	@Description	Returns the profile stored when the handle last logged in, or a placeholder. isOwner is a rendering hint taken from the display cookie.
//	@Tags			Profile
//	@Produce		json
//	@Param			handle	path		string			true	"HandCash handle, with or without $"
//	@Success		200		{object}	response		"success, profile, known, isOwner"
//	@Failure		400		{object}	httpx.ErrorBody	"Handle required"
//	@Failure		500		{object}	httpx.ErrorBody	"Failed to load profile"
//	@Router			/api/profile/{handle} [get]
func (h *Handler) get(c *gin.Context) {
	handle := strings.TrimSpace(c.Param("handle"))
	if handle == "" {
		httpx.Fail(c.Writer, http.StatusBadRequest, "Handle required")
		return
	}

	p, known, err := h.directory.Lookup(c.Request.Context(), handle)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("profile lookup failed", "error", err.Error())
		httpx.Fail(c.Writer, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	// isOwner is a rendering hint taken from the display cookie; it must
	// not gate any write.
	viewer, found, _ := session.DisplayProfile(c.Request)
	isOwner := found && normalizeHandle(viewer.Handle) == normalizeHandle(handle)

	httpx.WriteJSON(c.Writer, http.StatusOK, response{
		Success: true,
		Profile: p,
		Known:   known,
		IsOwner: isOwner,
	})
}
