package utils_handler

import (
	"strconv"

	"github.com/an1skat/catopia-backend/internal/config"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"net/http"
)

func GetReqCx(c *gin.Context) (*sqlx.DB, uuid.UUID) {
	return c.MustGet("db").(*sqlx.DB), c.MustGet("UserID").(uuid.UUID)
}

func GetDB(c *gin.Context) *sqlx.DB {
	return c.MustGet("db").(*sqlx.DB)
}

func GetConfig(c *gin.Context) *config.Config {
	return c.MustGet("cfg").(*config.Config)
}

func GetObj[T any](c *gin.Context) (T, error) {
	var obj T
	err := c.ShouldBindJSON(&obj)
	return obj, err
}

// GetCommentID parses the :commentId path parameter.
func GetCommentID(c *gin.Context) (int64, error) {
	raw := c.Param("commentId")
	if raw == "" {
		return 0, api_error.NewFromStr("missing comment id", http.StatusBadRequest)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, api_error.NewFromStr("invalid comment id", http.StatusBadRequest)
	}

	return id, nil
}
