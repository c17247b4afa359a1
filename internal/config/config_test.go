package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(cfg *Config)
		wantErr string
	}{
		{
			name: "con credenciales completas pasa",
			setup: func(cfg *Config) {
				cfg.Database.URL = "db.example.com:5432/saltenas"
				cfg.Database.Password = "secreta"
			},
		},
		{
			name: "sin URL de base de datos rechaza el arranque",
			setup: func(cfg *Config) {
				cfg.Database.Password = "secreta"
			},
			wantErr: "DATABASE_URL es obligatoria",
		},
		{
			name: "sin contraseña rechaza el arranque",
			setup: func(cfg *Config) {
				cfg.Database.URL = "db.example.com:5432/saltenas"
			},
			wantErr: "DATABASE_PASSWORD es obligatoria",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.setup(cfg)

			err := cfg.Validate()

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
