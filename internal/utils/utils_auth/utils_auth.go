package utils_auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

var JWT_SECRET_KEY = []byte(os.Getenv("JWT_SECRET_KEY"))

const (
	ARGON2_TIME       = uint32(1)
	ARGON2_MEMORY     = uint32(64 * 1024)
	ARGON2_THREADS    = uint8(2)
	ARGON2_KEYLENGTH  = uint32(32)
	ARGON2_SALTLENGTH = uint32(16)

	JWT_ACCESS_TOKEN_EXPIRATION = 30 * 24 * time.Hour

	RESET_CODE_LENGTH      = 6
	OAUTH_PASSWORD_LENGTH  = 8
	OAUTH_PASSWORD_CHARSET = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// formatHash takes in a salt and Argon2 hash of a password in bytes,
// and returns a string containing the cost parameters used to generate
// the hash, as well as the base64-encoded hash and salt for storage.
func formatHash(salt []byte, hashedPassword []byte) string {
	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHashedPassword := base64.RawStdEncoding.EncodeToString(hashedPassword)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		uint32(argon2.Version),
		ARGON2_MEMORY,
		ARGON2_TIME,
		ARGON2_THREADS,
		encodedSalt,
		encodedHashedPassword,
	)
}

// parsePasswordHashStdForm takes in the standard representation of a
// hashed password, where the Argon2 hash and salt are base64-encoded,
// and returns the memory, time and thread parameters used to generate
// the hash, as well as the encoded salt and hash.
func parsePasswordHashStdForm(passwordHash *string) (
	uint32, uint32, uint8, string, string, error) {
	pattern := fmt.Sprintf(
		"^\\$argon2id\\$v=%d\\$m=(\\d+),t=(\\d+),p=(\\d+)\\$([A-Za-z0-9+/=]+)\\$([A-Za-z0-9+/=]+)$",
		uint32(argon2.Version))
	regex := regexp.MustCompile(pattern)
	matches := regex.FindStringSubmatch(*passwordHash)

	if matches == nil {
		return 0, 0, 0, "", "", errors.New("invalid argon2 hash format")
	}

	arg2Mem, _ := strconv.ParseUint(matches[1], 10, 32)
	arg2Time, _ := strconv.ParseUint(matches[2], 10, 32)
	arg2Threads, _ := strconv.ParseUint(matches[3], 10, 32)

	return uint32(arg2Mem), uint32(arg2Time), uint8(arg2Threads), matches[4], matches[5], nil
}

func generateArgon2Salt() ([]byte, error) {
	salt := make([]byte, ARGON2_SALTLENGTH)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	return salt, nil
}

func generateArgon2Hash(payload []byte, salt []byte) []byte {
	return argon2.IDKey(payload, salt, ARGON2_TIME, ARGON2_MEMORY, ARGON2_THREADS, ARGON2_KEYLENGTH)
}

// GenerateArgon2Hash takes in a string payload in its original form and
// returns the Argon2 hash of the payload along with its salt, formatted
// in the standard form.
func GenerateArgon2Hash(payload string) (string, error) {
	salt, err := generateArgon2Salt()
	if err != nil {
		return "", err
	}
	hash := generateArgon2Hash([]byte(payload), salt)
	return formatHash(salt, hash), nil
}

// VerifyArgon2Hash checks if the hash of payload matches storedHash.
// storedHash must be in the standard representation (i.e. the output of
// GenerateArgon2Hash); anything else simply fails verification.
func VerifyArgon2Hash(payload string, storedHash string) bool {
	arg2Mem, arg2Time, arg2Threads, salt, expectedHash, err := parsePasswordHashStdForm(&storedHash)
	if err != nil {
		return false
	}

	decodedSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	computedHash := base64.RawStdEncoding.EncodeToString(
		argon2.IDKey([]byte(payload), decodedSalt, arg2Time, arg2Mem, arg2Threads, ARGON2_KEYLENGTH))

	return computedHash == expectedHash
}

func GenerateAccessToken(userID uuid.UUID) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(JWT_ACCESS_TOKEN_EXPIRATION)),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			NotBefore: jwt.NewNumericDate(time.Now().UTC()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWT_SECRET_KEY)
}

// ParseAccessToken verifies the signature and validity window of a
// bearer token and extracts the embedded user id.
func ParseAccessToken(accessToken string) (uuid.UUID, error) {
	parsedToken, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JWT_SECRET_KEY, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := parsedToken.Claims.(*Claims)
	if !ok || !parsedToken.Valid {
		return uuid.Nil, errors.New("invalid access token")
	}

	return claims.UserID, nil
}

// GenerateResetCode returns a random 6-digit confirmation code for the
// password reset flow.
func GenerateResetCode() (string, error) {
	code := ""
	for i := 0; i < RESET_CODE_LENGTH; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

// GenerateRandomPassword returns a throwaway password for accounts
// created through OAuth, where the user never picks one.
func GenerateRandomPassword() (string, error) {
	password := make([]byte, OAUTH_PASSWORD_LENGTH)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(OAUTH_PASSWORD_CHARSET))))
		if err != nil {
			return "", err
		}
		password[i] = OAUTH_PASSWORD_CHARSET[n.Int64()]
	}
	return string(password), nil
}
