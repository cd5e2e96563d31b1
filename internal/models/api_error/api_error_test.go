package api_error

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ToResponse(c, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestToResponseAPIError(t *testing.T) {
	status, body := respond(t, NewFromStr("comment not found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "comment not found", body["message"])
}

func TestToResponseWithMessage(t *testing.T) {
	status, body := respond(t, New(errors.New("smtp dial failed"), http.StatusInternalServerError, "error sending confirmation email"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error sending confirmation email", body["message"])
	assert.Equal(t, "smtp dial failed", body["error"])
}

func TestToResponsePlainErrorIsInternal(t *testing.T) {
	status, body := respond(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", body["message"])
}

func TestSentinelStatuses(t *testing.T) {
	cases := map[int]APIError{
		http.StatusUnauthorized: Unauthenticated,
		http.StatusForbidden:    NotOwnerOrAdmin,
		http.StatusNotFound:     CommentNotFound,
		http.StatusConflict:     AlreadyLiked,
		http.StatusBadRequest:   EmptyText,
	}

	for want, apiErr := range cases {
		assert.Equal(t, want, apiErr.HTTPStatus())
	}

	// Unlike by a non-liker is a 404, per the failure taxonomy.
	assert.Equal(t, http.StatusNotFound, NotInLikes.HTTPStatus())
}
