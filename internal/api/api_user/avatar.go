package api_user

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/an1skat/catopia-backend/internal/utils/utils_handler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

// UploadAvatar stores the uploaded image under a generated name and
// records its public path on the user row. A previous avatar file, if
// any, is removed.
func UploadAvatar(c *gin.Context) {
	db, userID := utils_handler.GetReqCx(c)
	cfg := utils_handler.GetConfig(c)
	users := store.NewUserStore(db)

	user, err := users.FindByID(userID)
	if err != nil {
		c.Error(err)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	filenameSplits := strings.Split(file.Filename, ".")
	fileFormat := filenameSplits[len(filenameSplits)-1]
	fileName := fmt.Sprintf("%s.%s", uuid.New().String(), fileFormat)

	if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, fileName)); err != nil {
		c.Error(err)
		return
	}

	if user.Avatar != nil {
		os.Remove(filepath.Join(cfg.UploadDir, filepath.Base(*user.Avatar)))
	}

	avatarURL := fmt.Sprintf("%s/uploads/%s", cfg.BaseURL, fileName)
	if err := users.UpdateAvatar(userID, &avatarURL); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatar": avatarURL,
	})
}

func GetAvatar(c *gin.Context) {
	db, userID := utils_handler.GetReqCx(c)

	user, err := store.NewUserStore(db).FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.UserNotFound)
			return
		}
		c.Error(err)
		return
	}

	if user.Avatar == nil {
		c.Error(api_error.AvatarNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatar": *user.Avatar,
	})
}

func DeleteAvatar(c *gin.Context) {
	db, userID := utils_handler.GetReqCx(c)
	cfg := utils_handler.GetConfig(c)
	users := store.NewUserStore(db)

	user, err := users.FindByID(userID)
	if err != nil {
		c.Error(err)
		return
	}

	if user.Avatar == nil {
		c.Error(api_error.AvatarNotFound)
		return
	}

	os.Remove(filepath.Join(cfg.UploadDir, filepath.Base(*user.Avatar)))

	if err := users.UpdateAvatar(userID, nil); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar deleted",
	})
}
