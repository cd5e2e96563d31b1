package api_user

import (
	"errors"
	"fmt"
	"log"

	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/an1skat/catopia-backend/internal/utils/utils_auth"
	"github.com/an1skat/catopia-backend/internal/utils/utils_handler"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

func Register(c *gin.Context) {
	db := utils_handler.GetDB(c)
	users := store.NewUserStore(db)

	var newUser models.User
	if err := c.ShouldBindJSON(&newUser); err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	// Admin flag and avatar are never client-settable.
	newUser.ID = uuid.New()
	newUser.IsAdmin = false
	newUser.Avatar = nil

	hash, err := utils_auth.GenerateArgon2Hash(newUser.Password)
	if err != nil {
		c.Error(err)
		return
	}
	newUser.Password = hash

	if err := users.Insert(&newUser); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.Error(api_error.EmailTaken)
			return
		}
		c.Error(fmt.Errorf("error creating new user with uuid %s: %w", newUser.ID, err))
		return
	}

	log.Println("New user registered with uuid:", newUser.ID)

	accessToken, err := utils_auth.GenerateAccessToken(newUser.ID)
	if err != nil {
		c.Error(fmt.Errorf("error creating access token for user %s: %w", newUser.ID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  newUser.View(),
		"token": accessToken,
	})
}

func Login(c *gin.Context) {
	db := utils_handler.GetDB(c)
	users := store.NewUserStore(db)

	loginUser, err := utils_handler.GetObj[models.UserForLogin](c)
	if err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	storedUser, err := users.FindByEmail(loginUser.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.UserNotFound)
			return
		}
		c.Error(err)
		return
	}

	if !utils_auth.VerifyArgon2Hash(loginUser.Password, storedUser.Password) {
		c.Error(api_error.NewFromStr("invalid password or email", http.StatusBadRequest))
		return
	}

	accessToken, err := utils_auth.GenerateAccessToken(storedUser.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  storedUser.View(),
		"token": accessToken,
	})
}

// Me returns the record of the authenticated user.
func Me(c *gin.Context) {
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

	c.JSON(http.StatusOK, user.View())
}

func GetUser(c *gin.Context) {
	db := utils_handler.GetDB(c)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(api_error.NewFromStr("invalid user id", http.StatusBadRequest))
		return
	}

	user, err := store.NewUserStore(db).FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.UserNotFound)
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user.View(),
	})
}

func ListUsers(c *gin.Context) {
	db := utils_handler.GetDB(c)

	users, err := store.NewUserStore(db).All()
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}

	c.JSON(http.StatusOK, views)
}
