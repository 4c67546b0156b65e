package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/platform"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const ownerKey = "owner"

var registerOnce sync.Once

// Handler holds the HTTP handlers for the link API.
type Handler struct {
	service   ports.LinkService
	platforms *platform.Registry
}

// NewHandler creates a new HTTP handler with the given link service and
// platform registry.
func NewHandler(service ports.LinkService, platforms *platform.Registry) *Handler {
	registerOnce.Do(registerValidators)
	return &Handler{service: service, platforms: platforms}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/platforms", h.ListPlatforms)
		api.POST("/canonicalize", h.Canonicalize)
		api.POST("/metadata", h.ResolveMetadata)
		api.GET("/public/:owner/links", h.PublicLinks)

		owned := api.Group("", requireOwner)
		owned.GET("/links", h.ListLinks)
		owned.POST("/links", h.CreateLink)
		owned.PUT("/links/order", h.UpdateLinkOrder)
		owned.PUT("/links/:id", h.UpdateLink)
		owned.PATCH("/links/:id/folder", h.UpdateLinkFolder)
		owned.DELETE("/links/:id", h.DeleteLink)

		owned.GET("/folders", h.ListFolders)
		owned.POST("/folders", h.CreateFolder)
		owned.PUT("/folders/:id", h.UpdateFolder)
		owned.DELETE("/folders/:id", h.DeleteFolder)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// PlatformInfo describes a supported platform and its link types.
type PlatformInfo struct {
	Name      domain.Platform `json:"name"`
	LinkTypes []LinkTypeInfo  `json:"linkTypes"`
}

// LinkTypeInfo tells the editor how bare ids are turned into URLs.
type LinkTypeInfo struct {
	Type    domain.LinkType `json:"type"`
	BaseURL string          `json:"baseUrl"`
	Example string          `json:"example"`
}

// ListPlatforms returns the platform registry.
//
//	@Summary		List platforms
//	@Description	Returns the supported music platforms in display order, with the link types each accepts.
//	@Tags			editor
//	@Produce		json
//	@Success		200	{array}	PlatformInfo
//	@Router			/api/v1/platforms [get]
func (h *Handler) ListPlatforms(c *gin.Context) {
	descriptors := h.platforms.Platforms()
	out := make([]PlatformInfo, 0, len(descriptors))
	for _, d := range descriptors {
		info := PlatformInfo{Name: d.Name}
		for _, lt := range d.LinkTypes {
			info.LinkTypes = append(info.LinkTypes, LinkTypeInfo{
				Type:    lt.Type,
				BaseURL: lt.BaseURL,
				Example: lt.BaseURL + lt.SampleID,
			})
		}
		out = append(out, info)
	}
	c.JSON(http.StatusOK, out)
}

// CanonicalizeResponse carries a canonical URL.
type CanonicalizeResponse struct {
	URL string `json:"url"`
}

// Canonicalize turns pasted input into the canonical URL for a platform and
// link type.
//
//	@Summary		Canonicalize a music link
//	@Description	Accepts a full URL or a bare id. Bare ids are appended to the link type's base URL.
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.CanonicalizeRequest	true	"Platform, link type and pasted input"
//	@Success		200		{object}	CanonicalizeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/canonicalize [post]
func (h *Handler) Canonicalize(c *gin.Context) {
	var req domain.CanonicalizeRequest
	if !bindJSON(c, &req) {
		return
	}

	url, err := h.service.Canonicalize(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CanonicalizeResponse{URL: url})
}

// ResolveMetadata returns best-effort display metadata for a URL.
//
//	@Summary		Resolve metadata
//	@Description	Runs the platform's provider chain. Fields sent in the request are kept as overrides.
//	@Description	Unavailable metadata is returned as empty fields, never as an error.
//	@Tags			editor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.MetadataRequest	true	"Canonical URL and optional overrides"
//	@Success		200		{object}	domain.Metadata
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/metadata [post]
func (h *Handler) ResolveMetadata(c *gin.Context) {
	var req domain.MetadataRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.service.ResolveMetadata(c.Request.Context(), req))
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps domain errors to status codes.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, domain.ErrInvalidLinkFormat):
		status, code = http.StatusBadRequest, "invalid_link_format"
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		status, code = http.StatusBadRequest, "unsupported_platform"
	case errors.Is(err, domain.ErrUnsupportedLinkType):
		status, code = http.StatusBadRequest, "unsupported_link_type"
	case errors.Is(err, domain.ErrDuplicatePlatform), errors.Is(err, domain.ErrInvalidInput):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrConflictingPreview):
		status, code = http.StatusConflict, "conflicting_preview"
	}
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}

// requireOwner resolves the caller from the Bearer token. The token is the
// opaque owner reference issued by the identity service.
func requireOwner(c *gin.Context) {
	token := strings.TrimSpace(extractToken(c))
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Authorization header with Bearer token is required",
		})
		return
	}
	c.Set(ownerKey, token)
	c.Next()
}

func owner(c *gin.Context) string {
	return c.GetString(ownerKey)
}

// extractToken retrieves the Bearer token from the Authorization header.
// Any other scheme yields an empty token.
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return auth[7:]
	}
	return ""
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := registerLinkType(v); err != nil {
		panic(errors.Wrap(err, "register linktype validator"))
	}
}

func registerLinkType(v *validator.Validate) error {
	return v.RegisterValidation("linktype", func(fl validator.FieldLevel) bool {
		return domain.LinkType(fl.Field().String()).Valid()
	})
}
