package api_user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/an1skat/catopia-backend/internal/utils/utils_auth"
	"github.com/an1skat/catopia-backend/internal/utils/utils_handler"
	"github.com/an1skat/catopia-backend/internal/utils/utils_mail"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"net/http"
)

const RESET_CODE_TTL = 15 * time.Minute

var resetCodePattern = regexp.MustCompile(`^\d{6}$`)

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"userCode" binding:"required"`
}

type ChangePasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"userCode" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPassword issues a fresh confirmation code for the given email
// and mails it out. The code is kept in storage keyed by email, so
// concurrent resets for different users cannot clobber each other.
func ForgotPassword(c *gin.Context) {
	db := utils_handler.GetDB(c)
	cfg := utils_handler.GetConfig(c)

	req, err := utils_handler.GetObj[ForgotPasswordRequest](c)
	if err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	if _, err := store.NewUserStore(db).FindByEmail(req.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.UserNotFound)
			return
		}
		c.Error(err)
		return
	}

	code, err := utils_auth.GenerateResetCode()
	if err != nil {
		c.Error(err)
		return
	}

	reset := models.PasswordReset{
		Email:   req.Email,
		Code:    code,
		Expires: time.Now().UTC().Add(RESET_CODE_TTL),
	}
	if err := store.NewResetCodeStore(db).Put(&reset); err != nil {
		c.Error(err)
		return
	}

	mailer := utils_mail.New(cfg.SMTPAddr, cfg.SMTPEmail, cfg.SMTPPassword)
	if err := mailer.SendResetCode(req.Email, code); err != nil {
		c.Error(api_error.New(err, http.StatusInternalServerError, "error sending confirmation email"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Confirmation email sent successfully",
	})
}

func Confirm(c *gin.Context) {
	db := utils_handler.GetDB(c)

	req, err := utils_handler.GetObj[ConfirmRequest](c)
	if err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	if err := verifyResetCode(db, req.Email, req.Code); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Code verified successfully",
	})
}

// ChangePassword verifies the code once more, rehashes the password
// and consumes the reset row.
func ChangePassword(c *gin.Context) {
	db := utils_handler.GetDB(c)

	req, err := utils_handler.GetObj[ChangePasswordRequest](c)
	if err != nil {
		c.Error(api_error.NewFromErr(err, http.StatusBadRequest))
		return
	}

	if err := verifyResetCode(db, req.Email, req.Code); err != nil {
		c.Error(err)
		return
	}

	hash, err := utils_auth.GenerateArgon2Hash(req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	if err := store.NewUserStore(db).UpdatePassword(req.Email, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.UserNotFound)
			return
		}
		c.Error(err)
		return
	}

	if err := store.NewResetCodeStore(db).Delete(req.Email); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

func verifyResetCode(db *sqlx.DB, email, code string) error {
	if !resetCodePattern.MatchString(code) {
		return api_error.InvalidCodeForm
	}

	reset, err := store.NewResetCodeStore(db).Find(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return api_error.IncorrectCode
		}
		return err
	}

	// char(6) columns come back space-padded from some drivers.
	if strings.TrimSpace(reset.Code) != code || reset.IsExpired(time.Now().UTC()) {
		return api_error.IncorrectCode
	}

	return nil
}
