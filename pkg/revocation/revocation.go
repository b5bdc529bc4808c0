// Package revocation mantém a lista de tokens revogados antes da expiração.
// A sessão continua sem estado no servidor; a lista guarda apenas o jti
// de tokens encerrados por logout, até o fim da validade de cada um.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrEmptyTokenID é retornado quando o token não possui jti
var ErrEmptyTokenID = errors.New("token sem identificador (jti)")

const keyPrefix = "revoked:jti:"

// Denylist registra e consulta tokens revogados
type Denylist interface {
	// Revoke revoga o token até expiresAt
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked verifica se o token foi revogado
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Noop é usado quando não há Redis configurado: nada é revogado
type Noop struct{}

// Revoke implementa Denylist
func (Noop) Revoke(context.Context, string, time.Time) error { return nil }

// IsRevoked implementa Denylist
func (Noop) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// RedisDenylist guarda os jti revogados no Redis com TTL igual ao tempo restante do token
type RedisDenylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisDenylist cria uma denylist sobre um cliente Redis existente
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client, now: time.Now}
}

// Connect abre a conexão a partir de uma URL redis:// e verifica com PING
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}
	return client, nil
}

// Revoke implementa Denylist. Tokens já expirados não são gravados.
func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}

	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("falha ao revogar token: %w", err)
	}
	return nil
}

// IsRevoked implementa Denylist
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := d.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("falha ao consultar revogação: %w", err)
	}
	return n > 0, nil
}
