package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/database/sqlite"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cacheTable = "cache"

// CacheRepository é um cache chave/valor com expiração por idade
type CacheRepository interface {
	Get(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Prune(ctx context.Context, maxAge time.Duration) (int64, error)
	Stats(ctx context.Context) (*CacheStats, error)
}

type CacheStats struct {
	Entries int64      `json:"entries" yaml:"entries"`
	Oldest  *time.Time `json:"oldest,omitempty" yaml:"oldest,omitempty"`
	Newest  *time.Time `json:"newest,omitempty" yaml:"newest,omitempty"`
}

type cacheRepository struct {
	conn sqlite.Queryer
	now  func() time.Time
}

func NewCacheRepository(conn sqlite.Queryer) CacheRepository {
	return &cacheRepository{
		conn: conn,
		now:  time.Now,
	}
}

func cutoff(now time.Time, age time.Duration) int64 {
	if age < 0 {
		age = 0
	}
	return now.Add(-age).Unix()
}

// Get retorna o valor se ele tiver no máximo ttl de idade; entradas vencidas são apagadas
func (r *cacheRepository) Get(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	query, args, err := squirrel.
		Select("v", "created_at").
		From(cacheTable).
		Where(squirrel.Eq{"k": key}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		value     string
		createdAt int64
	)
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&value, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("erro ao ler cache: %w", err)
	}

	if createdAt < cutoff(r.now(), ttl) {
		if err := r.Delete(ctx, key); err != nil {
			logrus.WithError(err).Warn("cache: falha ao remover entrada expirada")
		}
		return "", false, nil
	}

	return value, true, nil
}

func (r *cacheRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := squirrel.
		Insert(cacheTable).
		Options("OR REPLACE").
		Columns("k", "v", "created_at").
		Values(key, value, r.now().Unix()).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar cache: %w", err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(cacheTable).
		Where(squirrel.Eq{"k": key}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover do cache: %w", err)
	}
	return nil
}

// Prune remove entradas mais antigas que maxAge e retorna quantas foram apagadas
func (r *cacheRepository) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	query, args, err := squirrel.
		Delete(cacheTable).
		Where(squirrel.Lt{"created_at": cutoff(r.now(), maxAge)}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar cache: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar entradas removidas do cache: %w", err)
	}
	return removed, nil
}

func (r *cacheRepository) Stats(ctx context.Context) (*CacheStats, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "MIN(created_at)", "MAX(created_at)").
		From(cacheTable).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		entries        int64
		oldest, newest sql.NullInt64
	)
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&entries, &oldest, &newest); err != nil {
		return nil, fmt.Errorf("erro ao ler estatísticas do cache: %w", err)
	}

	stats := &CacheStats{Entries: entries}
	if oldest.Valid {
		t := time.Unix(oldest.Int64, 0)
		stats.Oldest = &t
	}
	if newest.Valid {
		t := time.Unix(newest.Int64, 0)
		stats.Newest = &t
	}
	return stats, nil
}

// GetJSON decodifica uma entrada do cache. JSON inválido conta como ausência.
func GetJSON(ctx context.Context, cache CacheRepository, key string, ttl time.Duration, out any) (bool, error) {
	raw, ok, err := cache.Get(ctx, key, ttl)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logrus.WithField("key", key).WithError(err).Warn("cache: entrada corrompida, ignorando")
		return false, nil
	}
	return true, nil
}

// SetJSON serializa value e grava no cache
func SetJSON(ctx context.Context, cache CacheRepository, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao serializar valor do cache: %w", err)
	}
	return cache.Set(ctx, key, string(raw))
}

// StableKey gera a chave de cache a partir do JSON canônico de material
func StableKey(material any) (string, error) {
	key, err := utils.StableHash(material)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar chave de cache: %w", err)
	}
	return key, nil
}
