package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/staffdeck/workforce-console/internal/domain/session"
)

type Service interface {
	// GenerateAccessToken encodes the session identity and role flags into an
	// access token. Issued by the identity provider in production; kept here
	// for local development and tests.
	GenerateAccessToken(s session.Session) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(s session.Session) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":    s.UserID,
		"name":       s.Name,
		"is_admin":   s.IsAdmin,
		"is_manager": s.IsManager,
		"department": s.Department,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// SessionFromClaims rebuilds the read-only session context from verified
// token claims. An empty department is preserved as-is; the views decide
// what a missing department means for their role.
func SessionFromClaims(claims map[string]interface{}) (session.Session, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return session.Session{}, session.ErrSessionMissing
	}

	s := session.Session{UserID: userID}
	if name, ok := claims["name"].(string); ok {
		s.Name = name
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		s.IsAdmin = isAdmin
	}
	if isManager, ok := claims["is_manager"].(bool); ok {
		s.IsManager = isManager
	}
	if department, ok := claims["department"].(string); ok {
		s.Department = department
	}
	return s, nil
}
