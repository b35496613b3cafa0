package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
)

const tokenTypeAccess = "access"

// Claims is the verified content of an access token.
type Claims struct {
	UserID         string
	Username       string
	Email          string
	FullName       string
	EmploymentType string
	JobTitle       string
	IsActive       bool
	Role           user.Role
	IssuedAt       time.Time
	ExpiresAt      time.Time
}

// Identity returns the caller identity carried by the claims.
func (c Claims) Identity() user.Identity {
	return user.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}

type Service interface {
	IssueToken(u user.User) (token string, expiresAt int64, err error)
	ValidateToken(tokenString string) (Claims, error)
}

type JWTService struct {
	lifetime  time.Duration
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) (Service, error) {
	lifetime, err := time.ParseDuration(expirationTime)
	if err != nil {
		return nil, fmt.Errorf("parse token lifetime %q: %w", expirationTime, err)
	}

	return &JWTService{
		lifetime:  lifetime,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

func (j *JWTService) IssueToken(u user.User) (token string, expiresAt int64, err error) {
	exp := time.Now().Add(j.lifetime)

	claims := map[string]interface{}{
		jwt.SubjectKey:    u.ID,
		"username":        u.Username,
		"email":           u.Email,
		"full_name":       u.FullName,
		"employment_type": u.EmploymentType,
		"job_title":       u.JobTitle,
		"is_active":       u.IsActive,
		"role":            string(u.Role),
		"type":            tokenTypeAccess,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiry(claims, exp)

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, fmt.Errorf("encode token: %w", err)
	}
	return tokenString, exp.Unix(), nil
}

// ValidateToken checks signature and expiry. Every failure collapses into auth.ErrInvalidToken.
func (j *JWTService) ValidateToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, auth.ErrInvalidToken
	}

	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil || token == nil {
		return Claims{}, auth.ErrInvalidToken
	}

	if tokenType := stringClaim(token, "type"); tokenType != tokenTypeAccess {
		return Claims{}, auth.ErrInvalidToken
	}
	if token.Subject() == "" {
		return Claims{}, auth.ErrInvalidToken
	}

	claims := Claims{
		UserID:         token.Subject(),
		Username:       stringClaim(token, "username"),
		Email:          stringClaim(token, "email"),
		FullName:       stringClaim(token, "full_name"),
		EmploymentType: stringClaim(token, "employment_type"),
		JobTitle:       stringClaim(token, "job_title"),
		Role:           user.Role(stringClaim(token, "role")),
		IssuedAt:       token.IssuedAt(),
		ExpiresAt:      token.Expiration(),
	}
	if !user.IsValidRole(claims.Role) {
		return Claims{}, auth.ErrInvalidToken
	}
	if v, ok := token.Get("is_active"); ok {
		claims.IsActive, _ = v.(bool)
	}

	return claims, nil
}

func stringClaim(token jwt.Token, key string) string {
	v, ok := token.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
