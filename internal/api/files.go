package api

import (
	"encoding/hex" // Digest encoding
	"errors"       // Error matching
	"io"           // Upload reading
	"net/http"     // HTTP status codes
	"path"         // Slash path handling
	"strings"      // String manipulation
	"unicode"      // Filename sanitising

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Caller identity
	"web3_portal/internal/storage"    // Blob storage

	"github.com/gabriel-vasile/mimetype" // Content sniffing
	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/google/uuid"             // Identifier generation
	"github.com/sirupsen/logrus"         // Logging library
	"golang.org/x/crypto/blake2b"        // Content digest
	"gorm.io/gorm"                       // GORM ORM library
	"gorm.io/gorm/clause"                // Upserts
)

// allowedImageTypes are the media types accepted for card images
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/svg+xml"}

// RegisterFileRequest represents a file reference registration
type RegisterFileRequest struct {
	Path string `json:"path" binding:"required"` // Blob path
	Hash string `json:"hash" binding:"required"` // Content digest
}

// UploadResponse describes a stored upload
type UploadResponse struct {
	domain.FileReference        // Registered reference
	ContentType          string `json:"contentType"` // Detected media type
	Size                 int    `json:"size"`        // Bytes stored
}

// saveReference inserts or replaces the reference for ref.Path
func saveReference(db *gorm.DB, ref *domain.FileReference) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"hash"}),
	}).Create(ref).Error
}

// ListFilesHandler returns every reference, or the one named by ?path
func ListFilesHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context() // Request scoped context
		if p := c.Query("path"); p != "" {
			clean, err := storage.CleanPath(p)
			if err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid path"})
				return
			}
			var ref domain.FileReference
			if err := db.Where("path = ?", clean).First(&ref).Error; err != nil {
				if isNotFound(err) {
					c.JSON(http.StatusNotFound, errorResponse{Error: "File reference not found"})
					return
				}
				abortInternal(c, "Failed to fetch file reference", err, logrus.Fields{"path": clean})
				return
			}
			c.JSON(http.StatusOK, ref)
			return
		}

		cacheKey := filesCachePrefix + "all"
		var cached []domain.FileReference
		// If cached data found, return it
		if cache.Get(ctx, cacheKey, &cached) {
			c.JSON(http.StatusOK, gin.H{"files": cached, "cached": true})
			return
		}
		refs := []domain.FileReference{} // Never serialise as null
		if err := db.Order("path").Find(&refs).Error; err != nil {
			abortInternal(c, "Failed to fetch file references", err, nil)
			return
		}
		cache.Set(ctx, cacheKey, refs) // Cache the response for future requests
		c.JSON(http.StatusOK, gin.H{"files": refs, "cached": false})
	}
}

// RegisterFileHandler records a reference to a blob stored elsewhere
func RegisterFileHandler(db *gorm.DB, cache *Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterFileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Path and hash are required"})
			return
		}
		clean, err := storage.CleanPath(req.Path)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid path"})
			return
		}
		ref := domain.FileReference{Path: clean, Hash: strings.TrimSpace(req.Hash)}
		if err := saveReference(db, &ref); err != nil {
			abortInternal(c, "Failed to register file reference", err, logrus.Fields{"path": clean})
			return
		}
		cache.Invalidate(c.Request.Context(), filesCachePrefix) // Listing is stale
		logrus.WithFields(logrus.Fields{
			"admin": middleware.Principal(c), // Acting admin
			"path":  clean,                   // Registered path
		}).Info("File reference registered")
		c.JSON(http.StatusCreated, ref)
	}
}

// DropFileHandler removes the reference named by ?path and its blob when stored here
func DropFileHandler(db *gorm.DB, cache *Cache, blobs storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		clean, err := storage.CleanPath(c.Query("path"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid path"})
			return
		}
		res := db.Where("path = ?", clean).Delete(&domain.FileReference{})
		if res.Error != nil {
			abortInternal(c, "Failed to drop file reference", res.Error, logrus.Fields{"path": clean})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, errorResponse{Error: "File reference not found"})
			return
		}
		// The reference may point at a blob kept elsewhere
		if err := blobs.Delete(c.Request.Context(), clean); err != nil && !errors.Is(err, storage.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"path": clean, "error": err.Error()}).Warn("Blob removal failed")
		}
		cache.Invalidate(c.Request.Context(), filesCachePrefix) // Listing is stale
		logrus.WithFields(logrus.Fields{
			"admin": middleware.Principal(c), // Acting admin
			"path":  clean,                   // Dropped path
		}).Info("File reference dropped")
		c.JSON(http.StatusOK, gin.H{"message": "File reference dropped"})
	}
}

// UploadHandler stores an image from the multipart field "file" and registers it
func UploadHandler(db *gorm.DB, cache *Cache, blobs storage.Store, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file") // Uploaded file
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "File is required"})
			return
		}
		// Check size before reading
		if header.Size > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "File is too large"})
			return
		}
		f, err := header.Open()
		if err != nil {
			abortInternal(c, "Failed to read upload", err, nil)
			return
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxBytes+1)) // Never trust the declared size
		if err != nil {
			abortInternal(c, "Failed to read upload", err, nil)
			return
		}
		if int64(len(data)) > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "File is too large"})
			return
		}
		// Check the content, not the declared type
		mtype := mimetype.Detect(data)
		if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
			c.JSON(http.StatusUnsupportedMediaType, errorResponse{Error: "Only PNG, JPG and SVG images are allowed"})
			return
		}

		prefix := strings.Trim(c.DefaultPostForm("prefix", "web3-cards"), "/") // Folder inside the store
		id := c.PostForm("id")                                                  // Owner id, usually the card id
		if id == "" {
			id = uuid.NewString()
		}
		blobPath, err := storage.CleanPath(path.Join(prefix, sanitizeFilename(id)+"-"+sanitizeFilename(header.Filename)))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid path"})
			return
		}

		sum := blake2b.Sum256(data) // Content digest
		ref := domain.FileReference{Path: blobPath, Hash: hex.EncodeToString(sum[:])}
		ctx := c.Request.Context()
		if err := blobs.Put(ctx, blobPath, storage.Blob{Data: data, ContentType: mtype.String()}); err != nil {
			abortInternal(c, "Failed to store upload", err, logrus.Fields{"path": blobPath})
			return
		}
		if err := saveReference(db, &ref); err != nil {
			// Do not leave a blob nothing points at
			if delErr := blobs.Delete(ctx, blobPath); delErr != nil && !errors.Is(delErr, storage.ErrNotFound) {
				logrus.WithFields(logrus.Fields{"path": blobPath, "error": delErr.Error()}).Warn("Blob removal failed")
			}
			abortInternal(c, "Failed to register upload", err, logrus.Fields{"path": blobPath})
			return
		}
		cache.Invalidate(ctx, filesCachePrefix) // Listing is stale
		logrus.WithFields(logrus.Fields{
			"admin":        middleware.Principal(c), // Acting admin
			"path":         blobPath,                // Stored path
			"content_type": mtype.String(),          // Detected type
			"size":         len(data),               // Bytes stored
		}).Info("Upload stored")
		c.JSON(http.StatusCreated, UploadResponse{FileReference: ref, ContentType: mtype.String(), Size: len(data)})
	}
}

// BlobHandler serves stored content under /blobs/*path
func BlobHandler(blobs storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		blob, err := blobs.Get(c.Request.Context(), c.Param("path"))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidPath):
				c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid path"})
			case errors.Is(err, storage.ErrNotFound):
				c.JSON(http.StatusNotFound, errorResponse{Error: "File not found"})
			default:
				abortInternal(c, "Failed to read file", err, logrus.Fields{"path": c.Param("path")})
			}
			return
		}
		c.Header("Cache-Control", "public, max-age=3600") // Paths change when content does
		c.Data(http.StatusOK, blob.ContentType, blob.Data)
	}
}

// sanitizeFilename keeps letters, digits, dots, dashes and underscores
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '-'
		default:
			return -1
		}
	}, name)
}
