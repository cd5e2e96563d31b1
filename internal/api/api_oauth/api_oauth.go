package api_oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/an1skat/catopia-backend/internal/config"
	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/an1skat/catopia-backend/internal/utils/utils_auth"
	"github.com/an1skat/catopia-backend/internal/utils/utils_handler"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"net/http"
)

const (
	STATE_COOKIE = "oauth_state"
	USERINFO_URL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func oauthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// Login starts the OAuth dance: a random state goes into a short-lived
// cookie and the client is redirected to the Google consent page.
func Login(c *gin.Context) {
	cfg := utils_handler.GetConfig(c)

	state := uuid.NewString()
	c.SetCookie(STATE_COOKIE, state, 600, "/", "", false, true)

	c.Redirect(http.StatusTemporaryRedirect, oauthConfig(cfg).AuthCodeURL(state))
}

// Callback finishes the dance: verify state, exchange the code, fetch
// the profile, find or create the matching user, then hand the token
// to the frontend via redirect.
func Callback(c *gin.Context) {
	db := utils_handler.GetDB(c)
	cfg := utils_handler.GetConfig(c)

	storedState, err := c.Cookie(STATE_COOKIE)
	if err != nil || storedState == "" || c.Query("state") != storedState {
		c.Error(api_error.NewFromStr("oauth state mismatch", http.StatusUnauthorized))
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Error(api_error.NewFromStr("missing authorization code", http.StatusBadRequest))
		return
	}

	conf := oauthConfig(cfg)
	token, err := conf.Exchange(c.Request.Context(), code)
	if err != nil {
		c.Error(api_error.New(err, http.StatusUnauthorized, "oauth code exchange failed"))
		return
	}

	info, err := fetchUserInfo(conf, token)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := findOrCreateUser(store.NewUserStore(db), info)
	if err != nil {
		c.Error(err)
		return
	}

	accessToken, err := utils_auth.GenerateAccessToken(user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect,
		fmt.Sprintf("%s/redirect-after-auth?authToken=%s", cfg.FrontendURL, accessToken))
}

func fetchUserInfo(conf *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	restyClient := resty.NewWithClient(conf.Client(context.Background(), token))

	info := &googleUserInfo{}
	if _, err := restyClient.R().
		SetHeader("Authorization", "Bearer "+token.AccessToken).
		SetResult(info).
		Get(USERINFO_URL); err != nil {
		return nil, err
	}

	if info.Email == "" {
		return nil, api_error.NewFromStr("email not found in the Google profile", http.StatusUnauthorized)
	}

	return info, nil
}

// findOrCreateUser maps a Google profile onto a local account. First
// login creates the user with a throwaway password; after that the
// account is matched by email.
func findOrCreateUser(users store.UserStore, info *googleUserInfo) (models.User, error) {
	user, err := users.FindByEmail(info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}

	password, err := utils_auth.GenerateRandomPassword()
	if err != nil {
		return models.User{}, err
	}

	hash, err := utils_auth.GenerateArgon2Hash(password)
	if err != nil {
		return models.User{}, err
	}

	user = models.User{
		ID:       uuid.New(),
		Name:     info.Name,
		Email:    info.Email,
		Password: hash,
	}

	if err := users.Insert(&user); err != nil {
		return models.User{}, err
	}

	return user, nil
}
