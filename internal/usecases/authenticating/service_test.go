package authenticating

import (
	"testing"

	"github.com/rcondori/saltenas-erp-api/internal/config"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "secreto-de-pruebas"
	cfg.Auth.AdminKey = "salteña123"
	return cfg
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		clave   string
		wantErr error
	}{
		{
			name:  "clave correcta en texto plano",
			cfg:   testConfig(),
			clave: "salteña123",
		},
		{
			name:    "clave incorrecta",
			cfg:     testConfig(),
			clave:   "otra",
			wantErr: ErrClaveInvalida,
		},
		{
			name: "sin clave configurada el login queda deshabilitado",
			cfg: func() *config.Config {
				cfg := testConfig()
				cfg.Auth.AdminKey = ""
				return cfg
			}(),
			clave:   "salteña123",
			wantErr: ErrClaveNoConfigurada,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.cfg)

			token, err := service.Login(tt.clave)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_Login_ConHashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-de-produccion"), bcrypt.MinCost)
	assert.NoError(t, err)

	cfg := testConfig()
	cfg.Auth.AdminKeyHash = string(hash)

	service := NewService(cfg)

	t.Run("el hash valida la clave real", func(t *testing.T) {
		token, err := service.Login("clave-de-produccion")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("con hash configurado la clave en texto plano deja de valer", func(t *testing.T) {
		_, err := service.Login("salteña123")
		assert.ErrorIs(t, err, ErrClaveInvalida)
	})
}

func TestService_ValidateToken(t *testing.T) {
	cfg := testConfig()
	service := NewService(cfg)

	t.Run("acepta un token recién emitido", func(t *testing.T) {
		token, err := service.Login("salteña123")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Rol)
		assert.Equal(t, "supervisor", claims.Subject)
	})

	t.Run("rechaza un token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("no-es-un-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalido)
	})

	t.Run("rechaza un token firmado con otro secreto", func(t *testing.T) {
		otroCfg := testConfig()
		otroCfg.Auth.Secret = "otro-secreto"
		token, err := NewService(otroCfg).Login("salteña123")
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalido)
	})
}
