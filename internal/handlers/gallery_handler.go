package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barberflow/salon-api/internal/audit"
	"github.com/barberflow/salon-api/internal/gallery"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/httpresp"
	"github.com/barberflow/salon-api/internal/middleware"
)

// maxUploadBytes caps gallery uploads before decoding.
const maxUploadBytes = 10 << 20

type GalleryHandler struct {
	gallery *gallery.Manager
	// uploader is nil when no bucket is configured; the upload endpoint is
	// then disabled while URL-based management keeps working.
	uploader *gallery.Uploader
	audit    *audit.Dispatcher
}

func NewGalleryHandler(g *gallery.Manager, up *gallery.Uploader, a *audit.Dispatcher) *GalleryHandler {
	return &GalleryHandler{gallery: g, uploader: up, audit: a}
}

// --------- Requests ---------

type AddGalleryImageRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// --------- Handlers ---------

func (h *GalleryHandler) List(c *gin.Context) {
	httpresp.List(c, h.gallery.List())
}

func (h *GalleryHandler) Add(c *gin.Context) {
	actor := middleware.Identity(c)

	var req AddGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := h.gallery.Add(c.Request.Context(), req.URL); err != nil {
		httperr.From(c, err, "Unable to add image.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: actor.ID,
		Action: "gallery_image_added",
		Entity: "gallery",
	})

	httpresp.Created(c, gin.H{"url": req.URL})
}

func (h *GalleryHandler) Remove(c *gin.Context) {
	actor := middleware.Identity(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.BadRequest(c, "invalid_image_index", "Index must be a number.")
		return
	}

	if err := h.gallery.Remove(c.Request.Context(), index); err != nil {
		httperr.From(c, err, "Unable to remove image.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "gallery_image_removed",
		Entity:   "gallery",
		Metadata: map[string]any{"index": index},
	})

	c.Status(204)
}

// Upload receives a multipart image, re-encodes it as WebP and stores it in
// the configured bucket before appending it to the gallery.
func (h *GalleryHandler) Upload(c *gin.Context) {
	actor := middleware.Identity(c)

	if h.uploader == nil {
		httperr.BadRequest(c, "uploads_disabled", "No storage bucket is configured.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the upload limit.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Unable to read uploaded image.")
		return
	}
	defer src.Close()

	encoded, err := gallery.EncodeWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file is not a supported image.")
		return
	}

	key := "gallery/" + uuid.NewString() + ".webp"
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Unable to store the image.")
		return
	}

	if err := h.gallery.Add(c.Request.Context(), url); err != nil {
		httperr.From(c, err, "Unable to add image.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actor.ID,
		Action:   "gallery_image_uploaded",
		Entity:   "gallery",
		Metadata: map[string]any{"key": key},
	})

	httpresp.Created(c, gin.H{"url": url})
}
