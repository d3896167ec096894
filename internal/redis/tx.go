package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultTxAttempts bounds how often an optimistic transaction is retried
// when a watched key changes underneath it.
const DefaultTxAttempts = 3

// ErrTxConflict is returned by RunTx when every attempt lost the race on a
// watched key.
var ErrTxConflict = errors.New("redis: optimistic transaction conflicted")

// RunTx runs fn inside WATCH keys ... MULTI/EXEC, retrying on conflicts.
// fn reads through tx and must queue its writes with tx.TxPipelined; it can be
// invoked more than once, so it must not have side effects outside Redis.
func RunTx(ctx context.Context, client Client, attempts int, fn func(tx *redis.Tx) error, keys ...string) error {
	if attempts <= 0 {
		attempts = DefaultTxAttempts
	}

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := client.Watch(ctx, fn, keys...)
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}

	return ErrTxConflict
}
