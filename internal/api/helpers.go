package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"web3_portal/internal/middleware" // Request id key

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// errorResponse is the body of every failed call
type errorResponse struct {
	Error string `json:"error"` // Human readable reason
}

// abortInternal logs err with its context and answers 500 with message
func abortInternal(c *gin.Context, message string, err error, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["error"] = err.Error()                                // Error message
	fields["request_id"] = c.GetString(middleware.RequestIDKey) // Correlate with the request log
	logrus.WithFields(fields).Error(message)                    // Log the failure
	_ = c.Error(err)                                            // Attach to the gin context
	c.JSON(http.StatusInternalServerError, errorResponse{Error: message})
}

// isNotFound reports whether err means the row does not exist
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports whether err is a primary key clash, e.g. a concurrent create with the same id
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// exists reports whether a row of model matches the primary key value
func exists(db *gorm.DB, model any, column string, value string) (bool, error) {
	var count int64
	err := db.Model(model).Where(column+" = ?", value).Count(&count).Error
	return count > 0, err
}
