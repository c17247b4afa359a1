package domain

import "github.com/golang-jwt/jwt/v5"

// Claims son los claims del token de administrador emitido por /admin/login.
type Claims struct {
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

// LoginRequest es el cuerpo de POST /admin/login
type LoginRequest struct {
	Clave string `json:"clave"`
}

// LoginResponse devuelve el token Bearer para los endpoints /admin
type LoginResponse struct {
	Token string `json:"token"`
}
