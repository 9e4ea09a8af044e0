package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAuthNotConfigured  = errors.New("admin login is not configured")
)

const adminCookieName = "admin_token"

// AuthService implements the single-owner admin login. The capability token
// is issued and validated server-side (an HS256 JWT in an HttpOnly cookie),
// never trusted from client-readable storage.
type AuthService struct {
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	isProduction bool
}

func NewAuthService(passwordHash, jwtSecret string, jwtExpiry time.Duration, isProduction bool) *AuthService {
	return &AuthService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		isProduction: isProduction,
	}
}

// Login checks the password against the configured bcrypt hash and returns a
// signed session token.
func (s *AuthService) Login(password string) (token string, expiry time.Time, err error) {
	if s.passwordHash == "" {
		return "", time.Time{}, ErrAuthNotConfigured
	}

	err = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiry = time.Now().Add(s.jwtExpiry)
	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": expiry.Unix(),
		"iat": time.Now().Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiry, nil
}

// VerifyToken validates a session token and confirms the admin subject.
func (s *AuthService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub != "admin" {
		return errors.New("invalid token subject")
	}

	return nil
}

func (s *AuthService) CookieName() string {
	return adminCookieName
}

func (s *AuthService) SetSessionCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
