package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Erros específicos
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("chave secreta JWT não configurada")
	ErrInvalidTTL    = errors.New("validade da sessão deve ser positiva")
)

// Identificadores fixos do emissor e do público dos tokens
const (
	Issuer   = "gordo-salgados-admin"
	Audience = "gordo-salgados-users"
)

// Claims representa as claims da sessão gravadas no token
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Option configura o JWTService
type Option func(*JWTService)

// WithClock substitui o relógio usado para emitir e validar tokens
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// JWTService emite e valida os tokens de sessão
type JWTService struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

// NewJWTService cria uma nova instância de JWTService.
// Não existe chave padrão: sem segredo o serviço não é criado.
func NewJWTService(secret string, validity time.Duration, opts ...Option) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingJWTKey
	}
	if validity <= 0 {
		return nil, ErrInvalidTTL
	}

	s := &JWTService{
		secretKey: []byte(secret),
		validity:  validity,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Validity retorna a janela de validade das sessões
func (s *JWTService) Validity() time.Duration {
	return s.validity
}

// IssueSession gera um token assinado para a conta informada
func (s *JWTService) IssueSession(userID, email, role string) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrMissingJWTKey
	}
	if userID == "" || email == "" || role == "" {
		return "", ErrInvalidClaims
	}

	now := s.now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID,
			Audience:  jwt.ClaimStrings{Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken valida um token e retorna as claims ou o motivo da rejeição
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verificar o método de assinatura
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.UserID == "" || claims.Email == "" || claims.Role == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// VerifySession retorna as claims de um token válido.
// Tokens malformados, expirados ou com assinatura errada resultam em (nil, false).
func (s *JWTService) VerifySession(tokenString string) (*Claims, bool) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}
	return claims, true
}
