package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivoirestore/backend/internal/application/media"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
)

// ImageField is the multipart field carrying the uploaded image.
const ImageField = "image"

// UploadHandler stores product and boutique images
type UploadHandler struct {
	BaseHandler
	uploadService *media.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(base BaseHandler, uploadService *media.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

// ProductImage handles POST /api/upload/product-image
func (h *UploadHandler) ProductImage(c *gin.Context) {
	h.upload(c, media.FolderProducts)
}

// BoutiqueImage handles POST /api/upload/boutique-image
func (h *UploadHandler) BoutiqueImage(c *gin.Context) {
	h.upload(c, media.FolderBoutiques)
}

func (h *UploadHandler) upload(c *gin.Context, folder string) {
	header, err := c.FormFile(ImageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.HandleError(c, media.ErrTooLarge)
			return
		}
		h.HandleError(c, media.ErrNoImage)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), folder, file, header.Size)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success: true,
		Message: "Image uploadée avec succès.",
		URL:     result.URL,
		Data:    result,
	})
}
