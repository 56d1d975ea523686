package catalog

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/application"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/infrastructure/cache"
	persistence "github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/infrastructure/persistence/postgres"
	catalogHttp "github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/interfaces/http"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/infrastructure/config"
)

// Module represents the Catalog module
type Module struct {
	repository *persistence.PgTrackRepository
	service    application.TrackService
	handler    *catalogHttp.TrackHandler
}

// NewModule creates and initializes the Catalog module. redisClient may be
// nil, which disables the listing cache.
func NewModule(
	db *sqlx.DB,
	fileService catalogHttp.FileService,
	redisClient *redis.Client,
	cfg config.CatalogConfig,
) *Module {
	repository := persistence.NewTrackRepository(db)

	var pageCache application.PageCache
	if redisClient != nil {
		pageCache = cache.NewRedisPageCache(redisClient, cfg.CacheTTL)
	}

	service := application.NewTrackService(repository, pageCache)
	handler := catalogHttp.NewTrackHandler(service, fileService, cfg.DefaultPageSize)

	return &Module{
		repository: repository,
		service:    service,
		handler:    handler,
	}
}

// Service returns the track service
func (m *Module) Service() application.TrackService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *catalogHttp.TrackHandler {
	return m.handler
}
