package socials

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onesat-market/internal/errs"
	"onesat-market/internal/httpx"
	"onesat-market/internal/logger"
)

// maxBodyBytes caps a social-links write; a full record is well under 1 KB.
const maxBodyBytes = 8 << 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public read and the session-guarded write.
func (h *Handler) RegisterRoutes(r gin.IRouter, write ...gin.HandlerFunc) {
	r.GET("/api/tokens/social-links", h.get)
	r.POST("/api/tokens/social-links", append(write, h.set)...)
}

type getResponse struct {
	Success     bool   `json:"success"`
	SocialLinks Links  `json:"socialLinks"`
	Hrefs       *Links `json:"hrefs,omitempty"`
}

type setRequest struct {
	TokenID     string `json:"tokenId"`
	Tick        string `json:"tick"`
	SocialLinks *Links `json:"socialLinks"`
}

type setResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SocialLinks Links  `json:"socialLinks"`
}

// get godoc
//
//	@Summary		Get token social links
//	@Description	Returns the social links of a token. tokenId takes precedence over tick. A token that was never written returns an empty record.
//	@Tags			Tokens
//	@Produce		json
//	@Param			tokenId	query		string				false	"Token ID (txid_vout)"
//	@Param			tick	query		string				false	"Ticker"
//	@Param			resolve	query		bool				false	"Also return canonical profile URLs"
//	@Success		200		{object}	getResponse			"success, socialLinks, hrefs"
//	@Failure		400		{object}	httpx.ErrorBody		"Token ID or tick required"
//	@Failure		500		{object}	httpx.ErrorBody		"Failed to get social links"
//	@Router			/api/tokens/social-links [get]
func (h *Handler) get(c *gin.Context) {
	key, err := Key(c.Query("tokenId"), c.Query("tick"))
	if err != nil {
		fail(c, err, "Token ID or tick required")
		return
	}

	links, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("get social links failed", "error", err.Error())
		fail(c, err, "Failed to get social links")
		return
	}

	resp := getResponse{Success: true, SocialLinks: links}
	if resolve, _ := strconv.ParseBool(c.Query("resolve")); resolve {
		hrefs := links.Hrefs()
		resp.Hrefs = &hrefs
	}
	httpx.WriteJSON(c.Writer, http.StatusOK, resp)
}

// set godoc
//
//	@Summary		Replace token social links
//	@Description	Replaces the stored record. website and discord must be absolute URLs or they are dropped; fields left out are removed.
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		setRequest			true	"tokenId or tick, and socialLinks"
//	@Success		200		{object}	setResponse			"success, message, socialLinks"
//	@Failure		400		{object}	httpx.ErrorBody		"Invalid request body, or Token ID or tick required"
//	@Failure		401		{object}	httpx.ErrorBody		"Authentication required"
//	@Failure		429		{object}	httpx.ErrorBody		"Too many requests"
//	@Failure		500		{object}	httpx.ErrorBody		"Failed to update social links"
//	@Router			/api/tokens/social-links [post]
func (h *Handler) set(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errs.ErrValidation, "Invalid request body")
		return
	}

	key, err := Key(req.TokenID, req.Tick)
	if err != nil {
		fail(c, err, "Token ID or tick required")
		return
	}

	// absent socialLinks must not clear the stored record
	if req.SocialLinks == nil {
		fail(c, errs.ErrValidation, "Invalid request body")
		return
	}

	stored, err := h.service.Set(c.Request.Context(), key, *req.SocialLinks)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("update social links failed", "error", err.Error())
		fail(c, err, "Failed to update social links")
		return
	}

	logger.FromContext(c.Request.Context()).Info("social links updated", "key", key)

	httpx.WriteJSON(c.Writer, http.StatusOK, setResponse{
		Success:     true,
		Message:     "Social links updated successfully",
		SocialLinks: stored,
	})
}

func fail(c *gin.Context, err error, msg string) {
	httpx.Fail(c.Writer, errs.Status(err), msg)
}
