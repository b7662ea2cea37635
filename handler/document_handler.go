package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"instituteapi/storage"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	streamer *storage.Streamer
}

func NewDocumentHandler(streamer *storage.Streamer) *DocumentHandler {
	return &DocumentHandler{streamer: streamer}
}

// StreamPDF proxies a stored document through a short-lived signed URL
func (h *DocumentHandler) StreamPDF(c *gin.Context) {
	doc, err := h.streamer.Open(c.Request.Context(), c.Query("fullPath"))
	if err != nil {
		outcome := "error"
		if errors.Is(err, storage.ErrObjectNotFound) {
			outcome = "not_found"
		}
		utils.DocumentStreams.WithLabelValues(outcome).Inc()
		respondError(c, err, "Document")
		return
	}
	defer doc.Body.Close()

	header := c.Writer.Header()
	header.Set("Content-Type", doc.ContentType)
	header.Set("Content-Disposition", `inline; filename="`+doc.Filename+`"`)
	header.Set("Cache-Control", "private, max-age=300")
	if doc.ContentLength >= 0 {
		header.Set("Content-Length", strconv.FormatInt(doc.ContentLength, 10))
	}
	// documents can outlive the server write timeout on slow links
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		utils.Log().Warn().Err(err).Msg("failed to clear write deadline")
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, doc.Body); err != nil {
		utils.DocumentStreams.WithLabelValues("aborted").Inc()
		utils.Log().Warn().Err(err).Str("file", doc.Filename).Msg("document stream interrupted")
		return
	}
	utils.DocumentStreams.WithLabelValues("ok").Inc()
}
