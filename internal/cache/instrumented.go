package cache

import (
	"context"

	"github.com/guttosm/invoice-service/internal/metrics"
)

// Results recorded for cache operations.
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultOK    = "ok"
	resultError = "error"
)

type instrumented struct {
	next   Cache
	region string
}

// Instrument decorates c so every operation is counted per region.
func Instrument(c Cache, region string) Cache {
	return &instrumented{next: c, region: region}
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := i.next.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RecordCacheOperation(i.region, "get", resultError)
	case ok:
		metrics.RecordCacheOperation(i.region, "get", resultHit)
	default:
		metrics.RecordCacheOperation(i.region, "get", resultMiss)
	}
	return value, ok, err
}

func (i *instrumented) Put(ctx context.Context, key string, value []byte) error {
	err := i.next.Put(ctx, key, value)
	metrics.RecordCacheOperation(i.region, "put", result(err))
	return err
}

func (i *instrumented) Evict(ctx context.Context, key string) error {
	err := i.next.Evict(ctx, key)
	metrics.RecordCacheOperation(i.region, "evict", result(err))
	return err
}

func (i *instrumented) Ping(ctx context.Context) error {
	return i.next.Ping(ctx)
}

func (i *instrumented) Close() error {
	return i.next.Close()
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
