package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DashboardSubject é o único usuário do painel
const DashboardSubject = "dashboard"

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
