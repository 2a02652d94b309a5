package utils

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy define tentativas com backoff exponencial mais jitter aleatório
type RetryPolicy struct {
	Attempts            int
	Initial             time.Duration
	Max                 time.Duration
	RandomizationFactor float64
}

// DefaultRetryPolicy: 4 tentativas, começando em 0.5s e limitado a 8s
var DefaultRetryPolicy = RetryPolicy{
	Attempts:            4,
	Initial:             500 * time.Millisecond,
	Max:                 8 * time.Second,
	RandomizationFactor: 0.5,
}

// BackOff monta o backoff exponencial da política, sem limite de tempo total
func (p RetryPolicy) BackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.Initial
	exp.MaxInterval = p.Max
	exp.RandomizationFactor = p.RandomizationFactor
	exp.Multiplier = 2
	exp.MaxElapsedTime = 0
	exp.Reset()

	retries := p.Attempts - 1
	if retries < 0 {
		retries = 0
	}

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

// Retry executa fn até ter sucesso, esgotar as tentativas ou shouldRetry recusar o erro.
// Erros marcados com backoff.Permanent também encerram na hora.
func Retry(ctx context.Context, policy RetryPolicy, shouldRetry func(error) bool, fn func(attempt int) error) error {
	attempt := 0

	return backoff.Retry(func() error {
		err := fn(attempt)
		attempt++
		if err == nil || shouldRetry == nil {
			return err
		}

		var permanent *backoff.PermanentError
		if !errors.As(err, &permanent) && !shouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy.BackOff(ctx))
}
