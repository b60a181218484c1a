//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// shared lazily starts one container and hands it to every test in a package.
type shared struct {
	setup func(context.Context) (*Container, error)

	once      sync.Once
	mu        sync.RWMutex
	container *Container
	err       error
}

func (s *shared) get(ctx context.Context) (*Container, error) {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.container, s.err = s.setup(ctx)
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.container, nil
}

func (s *shared) cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.container != nil {
		return s.container.Cleanup(ctx)
	}
	return nil
}

var (
	sharedMongo    = &shared{setup: SetupMongoDB}
	sharedPostgres = &shared{setup: SetupPostgres}
	sharedRedis    = &shared{setup: SetupRedis}
)

// GetSharedMongoDB returns the package-wide MongoDB container.
func GetSharedMongoDB(ctx context.Context) (*Container, error) { return sharedMongo.get(ctx) }

// GetSharedPostgres returns the package-wide Postgres container.
func GetSharedPostgres(ctx context.Context) (*Container, error) { return sharedPostgres.get(ctx) }

// GetSharedRedis returns the package-wide Redis container.
func GetSharedRedis(ctx context.Context) (*Container, error) { return sharedRedis.get(ctx) }

// Backend names accepted by SetupTestMain.
const (
	Mongo    = "mongo"
	Postgres = "postgres"
	Redis    = "redis"
)

// SetupTestMain starts the requested shared containers, runs the tests and
// tears the containers down. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.Mongo, testutil.Redis))
//	}
func SetupTestMain(ctx context.Context, m *testing.M, backends ...string) int {
	started := make([]*shared, 0, len(backends))
	for _, backend := range backends {
		s := sharedFor(backend)
		if _, err := s.get(ctx); err != nil {
			panic(err)
		}
		started = append(started, s)
	}

	code := m.Run()

	for _, s := range started {
		if err := s.cleanup(ctx); err != nil {
			// Docker reaps the container anyway.
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared container: " + err.Error() + "\n")
		}
	}
	return code
}

func sharedFor(backend string) *shared {
	switch backend {
	case Mongo:
		return sharedMongo
	case Postgres:
		return sharedPostgres
	case Redis:
		return sharedRedis
	default:
		panic("testutil: unknown backend " + backend)
	}
}

// SanitizeDBName turns a test name into a valid MongoDB database name.
// Path separators become underscores, the name is truncated to 50
// characters and a timestamp suffix is appended for uniqueness.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return sanitized + "_" + fmt.Sprintf("%d", time.Now().UnixNano()%1000000)
}
