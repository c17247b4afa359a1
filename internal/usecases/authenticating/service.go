package authenticating

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rcondori/saltenas-erp-api/internal/config"
	"github.com/rcondori/saltenas-erp-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator emite y valida los tokens de administrador. No hay tabla de
// usuarios: el acceso de supervisor se controla con una sola clave de la
// configuración (en hash bcrypt en producción).
type Authenticator interface {
	Login(clave string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// Login intercambia la clave de acceso por un token Bearer de 24 horas
func (s *Service) Login(clave string) (string, error) {
	if err := s.verifyClave(clave); err != nil {
		return "", err
	}

	claims := domain.Claims{
		Rol: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "supervisor",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) verifyClave(clave string) error {
	// Con hash configurado gana el hash; la clave en texto plano queda para
	// entornos locales
	if s.cfg.Auth.AdminKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminKeyHash), []byte(clave)); err != nil {
			return ErrClaveInvalida
		}
		return nil
	}

	if s.cfg.Auth.AdminKey == "" {
		return ErrClaveNoConfigurada
	}

	if subtle.ConstantTimeCompare([]byte(s.cfg.Auth.AdminKey), []byte(clave)) != 1 {
		return ErrClaveInvalida
	}

	return nil
}

// ValidateToken verifica la firma y la expiración del token Bearer
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
