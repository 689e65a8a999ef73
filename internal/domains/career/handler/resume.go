package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/response"
	"bepl-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const proxyChunk = 32 * 1024

// ResumeCORS echoes the caller's origin so the admin panel can embed the PDF.
// The global CORS middleware skips resume paths; this runs in its place.
func (h *Handler) ResumeCORS(c *gin.Context) {
	origin := c.GetHeader("Origin")
	if origin == "" {
		c.Header("Access-Control-Allow-Origin", "*")
	} else {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")
	}
	c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
	c.Next()
}

// ResumePreflight handles OPTIONS /careers/:id/resume
func (h *Handler) ResumePreflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// GetResume handles GET /careers/:id/resume by streaming the stored PDF.
// Once the first byte is written, failures are only logged.
func (h *Handler) GetResume(c *gin.Context) {
	ctx := c.Request.Context()

	career, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	if career.ResumePublicID == "" {
		response.NotFound(c, "Resume not found")
		return
	}

	obj, err := h.objects.Open(ctx, career.ResumePublicID)
	if errors.Is(err, storage.ErrObjectNotFound) {
		response.NotFound(c, "Resume not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("career_id", career.ID.String()).Msg("Failed to open resume")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch PDF")
		return
	}
	defer obj.Body.Close()

	buf := make([]byte, proxyChunk)
	n, err := io.ReadAtLeast(obj.Body, buf, 1)
	if err != nil {
		log.Error().Err(err).Str("career_id", career.ID.String()).Msg("Failed to read resume")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch PDF")
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Header("Content-Type", contentType)
	if obj.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
	}
	c.Header("Content-Disposition",
		fmt.Sprintf(`inline; filename="%s_resume.pdf"`, utils.DispositionName(career.Name)))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(buf[:n]); err != nil {
		log.Warn().Err(err).Str("career_id", career.ID.String()).Msg("Client went away before resume was sent")
		c.Abort()
		return
	}
	// headers are on the wire from here; no JSON error can follow
	if _, err := io.CopyBuffer(c.Writer, obj.Body, buf); err != nil {
		log.Warn().Err(err).Str("career_id", career.ID.String()).Msg("Resume stream interrupted")
		c.Abort()
	}
}
