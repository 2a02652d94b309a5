package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Painel#2024"

var loginTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func authConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{Auth: config.Auth{
		Secret:       "segredo-de-teste",
		PasswordHash: string(hash),
		TokenTTL:     time.Hour,
	}}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(t *testing.T) *config.Config
		password string
		validate func(t *testing.T, resp *domain.LoginResponse, err error)
	}{
		{
			name:     "Autenticação desabilitada",
			cfg:      func(t *testing.T) *config.Config { return &config.Config{} },
			password: testPassword,
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrAuthDisabled, authErr.Code)
				assert.ErrorIs(t, err, ErrAuthDisabled)
				assert.Nil(t, resp)
			},
		},
		{
			name:     "Senha vazia",
			cfg:      authConfig,
			password: "",
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Senha incorreta",
			cfg:      authConfig,
			password: "outra-senha",
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
				assert.True(t, IsCredentialsError(err))
				assert.False(t, IsTokenError(err))
			},
		},
		{
			name:     "Sucesso",
			cfg:      authConfig,
			password: testPassword,
			validate: func(t *testing.T, resp *domain.LoginResponse, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, loginTime.Add(time.Hour), resp.ExpiresAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.cfg(t)).WithClock(fixedClock(loginTime))
			resp, err := service.Login(tt.password)
			tt.validate(t, resp, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := authConfig(t)
	resp, err := NewService(cfg).WithClock(fixedClock(loginTime)).Login(testPassword)
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		now      time.Time
		secret   string
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name:  "Token válido",
			token: resp.Token,
			now:   loginTime.Add(30 * time.Minute),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.DashboardSubject, claims.Subject)
				assert.NotEmpty(t, claims.SessionID)
			},
		},
		{
			name:  "Token expirado",
			token: resp.Token,
			now:   loginTime.Add(2 * time.Hour),
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrExpiredToken)
				assert.True(t, IsTokenError(err))
				assert.Nil(t, claims)
			},
		},
		{
			name:   "Assinado com outro segredo",
			token:  resp.Token,
			now:    loginTime,
			secret: "outro-segredo",
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidToken, authErr.Code)
			},
		},
		{
			name:  "Token malformado",
			token: "nao.e.um.jwt",
			now:   loginTime,
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *cfg
			if tt.secret != "" {
				c.Auth.Secret = tt.secret
			}
			claims, err := NewService(&c).WithClock(fixedClock(tt.now)).ValidateToken(tt.token)
			tt.validate(t, claims, err)
		})
	}
}

func TestService_TokenTTLPadrao(t *testing.T) {
	cfg := authConfig(t)
	cfg.Auth.TokenTTL = 0

	resp, err := NewService(cfg).WithClock(fixedClock(loginTime)).Login(testPassword)
	require.NoError(t, err)
	assert.Equal(t, loginTime.Add(12*time.Hour), resp.ExpiresAt)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "Curta", password: "Ab1!", wantErr: "pelo menos 8 caracteres"},
		{name: "Sem maiúscula", password: "abcdef1!", wantErr: "letra maiúscula"},
		{name: "Sem minúscula", password: "ABCDEF1!", wantErr: "letra minúscula"},
		{name: "Sem número", password: "Abcdefg!", wantErr: "um número"},
		{name: "Sem especial", password: "Abcdefg1", wantErr: "caractere especial"},
		{name: "Forte", password: testPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrWeakPassword)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	for _, length := range []int{4, 8, 16} {
		password, err := GenerateStrongPassword(length)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(password), 8)
		assert.NoError(t, ValidatePasswordStrength(password))
	}
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("fraca")
	assert.ErrorIs(t, err, ErrWeakPassword)

	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(testPassword)))
}
