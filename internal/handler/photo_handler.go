package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/steelbridge/fabshop/internal/service"
)

// maxPhotoSize caps a single upload at 20 MB.
const maxPhotoSize = 20 << 20

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload accepts a multipart form with a "file" part and an optional
// "description" field, stored against the job in the path.
func (h *PhotoHandler) Upload(c *gin.Context) {
	jobID, valid := idParam(c, "id")
	if !valid {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "missing file: "+err.Error())
		return
	}
	if fileHeader.Size > maxPhotoSize {
		badRequest(c, "file too large")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "unreadable file: "+err.Error())
		return
	}
	defer file.Close()

	photo, err := h.photoService.Upload(
		c.Request.Context(),
		jobID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("description"),
	)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, photo)
}

func (h *PhotoHandler) Get(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	photo, err := h.photoService.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, photo)
}

func (h *PhotoHandler) ListByJob(c *gin.Context) {
	jobID, valid := idParam(c, "id")
	if !valid {
		return
	}
	photos, err := h.photoService.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, photos)
}

type updatePhotoRequest struct {
	Description string `json:"description"`
}

func (h *PhotoHandler) Update(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	var req updatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	photo, err := h.photoService.UpdateDescription(c.Request.Context(), id, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, photo)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	id, valid := idParam(c, "id")
	if !valid {
		return
	}
	if err := h.photoService.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	okEmpty(c)
}
