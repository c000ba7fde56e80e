package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/supabase"
)

// multipartOverhead covers boundaries and headers around the file part.
const multipartOverhead = 1 << 20

type ObjectUploader interface {
	Upload(bucket, filename string, data []byte, contentType string) (string, string, error)
}

type UploadHandler struct {
	uploader      ObjectUploader
	buckets       config.Buckets
	maxUploadSize int64
	policy        auth.Policy
}

func NewUploadHandler(uploader ObjectUploader, buckets config.Buckets, maxUploadSize int64, policy auth.Policy) *UploadHandler {
	if policy == nil {
		policy = auth.AllowAuthenticated{}
	}
	return &UploadHandler{
		uploader:      uploader,
		buckets:       buckets,
		maxUploadSize: maxUploadSize,
		policy:        policy,
	}
}

// Upload godoc
// @Summary     Upload an image
// @Description Stores one file in a storage bucket and returns its public URL.
// @Description The content type is sniffed from the file bytes. Only images are accepted,
// @Description except the project images bucket which also takes videos.
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       bucket path string true "Bucket name"
// @Param       file formData file true "File to upload"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /uploads/{bucket} [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	if err := h.policy.Authorize(identity, auth.ResourceUploads, models.ActionCreate); err != nil {
		middleware.RespondError(c, err)
		return
	}

	bucket := c.Param("bucket")
	if !h.buckets.Has(bucket) {
		middleware.RespondError(c, apperrors.Validation(fmt.Sprintf("unknown bucket %q", bucket)))
		return
	}

	bodyLimit := h.maxUploadSize + multipartOverhead
	if c.Request.ContentLength > bodyLimit {
		middleware.RespondError(c, h.tooLarge())
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)
	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.RespondError(c, h.tooLarge())
			return
		}
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.KindValidation, "file is required"))
		return
	}
	if file.Size > h.maxUploadSize {
		middleware.RespondError(c, h.tooLarge())
		return
	}

	src, err := file.Open()
	if err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.KindValidation, "failed to open file"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadSize+1))
	if err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.KindValidation, "failed to read file"))
		return
	}
	if len(data) == 0 {
		middleware.RespondError(c, apperrors.Validation("file is empty"))
		return
	}

	mtype := mimetype.Detect(data)
	if !h.accepts(bucket, mtype) {
		middleware.RespondError(c, apperrors.Validation(
			fmt.Sprintf("unsupported file type %s", mtype.String())))
		return
	}

	filename := supabase.GenerateFilename(mtype.Extension())
	contentType := strings.SplitN(mtype.String(), ";", 2)[0]
	storagePath, publicURL, err := h.uploader.Upload(bucket, filename, data, contentType)
	if err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.KindUpstream, "failed to upload file"))
		return
	}
	log.Printf("Uploaded %s to %s (%d bytes, %s)", storagePath, bucket, len(data), contentType)

	c.JSON(http.StatusCreated, models.UploadResponse{
		Bucket: bucket,
		Path:   storagePath,
		URL:    publicURL,
		Size:   int64(len(data)),
	})
}

func (h *UploadHandler) tooLarge() error {
	return apperrors.Validation(fmt.Sprintf("file exceeds the %s limit", formatSize(h.maxUploadSize)))
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%d MB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%d KB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

func (h *UploadHandler) accepts(bucket string, mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
		if bucket == h.buckets.ProjectImages && strings.HasPrefix(m.String(), "video/") {
			return true
		}
	}
	return false
}
