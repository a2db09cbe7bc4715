package container

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/seo"
	"github.com/serroba/marketplace-routes/internal/store"
)

// RepositoryPackage provides the SEO URL and profile repositories for the
// configured storage backend. SEO URL reads go through the Redis cache.
func RepositoryPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (seo.Repository, error) {
		opts := do.MustInvoke[*Options](i)

		var base seo.Repository

		switch opts.Storage {
		case StorageMemory:
			base = store.NewMemorySEOStore()
		case StoragePostgres:
			base = store.NewPostgresSEOStore(do.MustInvoke[*pgxpool.Pool](i))
		default:
			return nil, fmt.Errorf("unknown storage %q", opts.Storage)
		}

		ttl := time.Duration(opts.CacheTTL) * time.Second

		return store.NewRedisSEOCache(base, do.MustInvoke[*redis.Client](i), ttl), nil
	})

	do.Provide(i, func(i *do.Injector) (profile.Repository, error) {
		opts := do.MustInvoke[*Options](i)

		switch opts.Storage {
		case StorageMemory:
			return store.NewMemoryProfileStore(), nil
		case StoragePostgres:
			return store.NewPostgresProfileStore(do.MustInvoke[*pgxpool.Pool](i)), nil
		default:
			return nil, fmt.Errorf("unknown storage %q", opts.Storage)
		}
	})
}
