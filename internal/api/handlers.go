// handlers.go - HTTP handlers for the ingestion endpoints.

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendlens/spendlens-backend/configs"
	"github.com/spendlens/spendlens-backend/internal/ai"
	"github.com/spendlens/spendlens-backend/internal/common"
	"github.com/spendlens/spendlens-backend/internal/pipeline"
	"github.com/spendlens/spendlens-backend/internal/processor"
	"github.com/spendlens/spendlens-backend/internal/storage"
)

// scanTimeout bounds one full receipt scan including inference.
const scanTimeout = 2 * time.Minute

// Server holds the shared components behind the HTTP handlers.
type Server struct {
	Pipeline *pipeline.Pipeline
	Narrator *ai.Narrator
	Store    storage.TransactionStore
	Cache    *storage.ScanCache
}

// NewServer wires the handler dependencies.
func NewServer(p *pipeline.Pipeline, narrator *ai.Narrator, store storage.TransactionStore, cache *storage.ScanCache) *Server {
	return &Server{Pipeline: p, Narrator: narrator, Store: store, Cache: cache}
}

// saveUpload writes the multipart "file" field into the upload directory
// under a unique name. The caller removes the file when done.
func saveUpload(c *gin.Context) (path, declaredMIME string, size int64, err error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", "", 0, fmt.Errorf("missing file field: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path = filepath.Join(configs.UPLOAD_DIR, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		return "", "", 0, fmt.Errorf("failed to store upload: %w", err)
	}
	return path, fileHeader.Header.Get("Content-Type"), fileHeader.Size, nil
}

func userIDFrom(c *gin.Context) string {
	if id := c.PostForm("user_id"); id != "" {
		return id
	}
	return "anonymous"
}

// ScanReceiptHandler handles POST /api/v1/scan/receipt. It accepts a receipt
// image or PDF bill, runs the ingestion pipeline and returns the tagged scan
// result. Invalid uploads get 400; extraction failures get 422; inference
// failures still return 200 with success=false and a fallback payload.
func (s *Server) ScanReceiptHandler(c *gin.Context) {
	reqCtx := common.NewRequestContext(userIDFrom(c))

	path, declaredMIME, size, err := saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid upload",
			"details":    err.Error(),
			"request_id": reqCtx.RequestID,
		})
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			reqCtx.LogWarning("failed to delete uploaded file %s: %v", path, err)
		}
	}()

	// Re-uploading the same bytes within the cache TTL skips the pipeline.
	digest, digestErr := storage.FileDigest(path)
	if digestErr == nil {
		if cached, ok := s.Cache.Get(digest); ok {
			reqCtx.LogInfo("scan cache hit for digest %s", digest[:12])
			c.JSON(http.StatusOK, gin.H{
				"status":     "success",
				"cached":     true,
				"result":     cached,
				"request_id": reqCtx.RequestID,
			})
			return
		}
	}

	ctx, cancel := contextWithTimeout(c, scanTimeout)
	defer cancel()

	result, err := s.Pipeline.ScanReceipt(ctx, path, declaredMIME, size, reqCtx)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, processor.ErrInvalidInput) || errors.Is(err, pipeline.ErrWrongArtifact) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":      "Receipt scan failed",
			"message":    ai.UserMessage(err),
			"details":    err.Error(),
			"request_id": reqCtx.RequestID,
		})
		return
	}

	// degraded results stay out of the cache so a transient inference
	// outage is not replayed for the full TTL
	if digestErr == nil && result.Success {
		s.Cache.Put(digest, result)
	}

	var saved []storage.TransactionRecord
	if s.Store != nil && result.Success {
		saved, err = s.Store.SaveTransactions(ctx, reqCtx.UserID, result.Transactions())
		if err != nil {
			reqCtx.LogWarning("failed to persist transactions: %v", err)
		}
	}

	response := gin.H{
		"status":     "success",
		"result":     result,
		"request_id": reqCtx.RequestID,
		"summary":    reqCtx.GetSummary(),
	}
	if len(saved) > 0 {
		response["saved_transactions"] = saved
	}
	c.JSON(http.StatusOK, response)
}

// VoiceQueryHandler handles POST /api/v1/voice/query. It accepts an audio
// recording and returns the routed intent. Routing failures come back as
// the unknown intent with HTTP 200.
func (s *Server) VoiceQueryHandler(c *gin.Context) {
	reqCtx := common.NewRequestContext(userIDFrom(c))

	path, declaredMIME, size, err := saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid upload",
			"details":    err.Error(),
			"request_id": reqCtx.RequestID,
		})
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			reqCtx.LogWarning("failed to delete uploaded file %s: %v", path, err)
		}
	}()

	ctx, cancel := contextWithTimeout(c, scanTimeout)
	defer cancel()

	result, err := s.Pipeline.RouteVoice(ctx, path, declaredMIME, size, reqCtx)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid voice upload",
			"details":    err.Error(),
			"request_id": reqCtx.RequestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"result":     result,
		"request_id": reqCtx.RequestID,
		"summary":    reqCtx.GetSummary(),
	})
}

// NarrateRequest is the body for POST /api/v1/voice/narrate.
type NarrateRequest struct {
	Intent string      `json:"intent" binding:"required"`
	Query  string      `json:"query"`
	Result interface{} `json:"result" binding:"required"`
}

// NarrateHandler turns a structured API result into a short spoken reply.
// It always answers 200; narration failures return the fallback sentence.
func (s *Server) NarrateHandler(c *gin.Context) {
	var req NarrateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	reqCtx := common.NewRequestContext("narrate")

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	reply := s.Narrator.Narrate(ctx, req.Intent, req.Query, req.Result, reqCtx)
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"reply":      reply,
		"request_id": reqCtx.RequestID,
	})
}

func contextWithTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}
