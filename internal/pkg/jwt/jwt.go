package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"healthportal/internal/domain"
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

// Claims carry the full patient profile so the portal never has to call the
// auth service back for contact details.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) GenerateToken(p domain.Patient) (string, error) {
	claims := Claims{
		UserID: p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Phone:  p.Phone,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}

// Patient converts validated claims back into the session identity shape.
func (c *Claims) Patient() domain.Patient {
	return domain.Patient{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
