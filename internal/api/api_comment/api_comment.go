package api_comment

import (
	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/service"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/an1skat/catopia-backend/internal/utils/utils_handler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
	Cat  *int   `json:"cat"`
}

func commentService(c *gin.Context) *service.CommentService {
	db := utils_handler.GetDB(c)
	return service.New(store.NewCommentStore(db), store.NewUserStore(db))
}

func New(c *gin.Context) {
	_, userID := utils_handler.GetReqCx(c)

	req, err := utils_handler.GetObj[CommentRequest](c)
	if err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	comment, err := commentService(c).Create(userID, req.Text, req.Cat)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, comment.View())
}

func View(c *gin.Context) {
	commentID, err := utils_handler.GetCommentID(c)
	if err != nil {
		c.Error(err)
		return
	}

	comment, author, err := commentService(c).Get(commentID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comment": comment.View(),
		"user":    author.View(),
	})
}

func List(c *gin.Context) {
	ids, err := commentService(c).ListIDs()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": ids,
	})
}

func Delete(c *gin.Context) {
	_, userID := utils_handler.GetReqCx(c)

	commentID, err := utils_handler.GetCommentID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := commentService(c).Delete(userID, commentID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment deleted",
	})
}

// Like and Unlike echo the mutated comment so the client can render
// the fresh likes facet without a second fetch.
func Like(c *gin.Context) {
	mutateLikes(c, (*service.CommentService).AddLike)
}

func Unlike(c *gin.Context) {
	mutateLikes(c, (*service.CommentService).RemoveLike)
}

func mutateLikes(c *gin.Context, op func(*service.CommentService, uuid.UUID, int64) (models.Comment, error)) {
	_, userID := utils_handler.GetReqCx(c)

	commentID, err := utils_handler.GetCommentID(c)
	if err != nil {
		c.Error(err)
		return
	}

	comment, err := op(commentService(c), userID, commentID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, comment.View())
}
