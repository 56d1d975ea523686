package subscriber

import (
	"github.com/jmoiron/sqlx"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/application"
	persistence "github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/infrastructure/persistence/postgres"
	subscriberHttp "github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/interfaces/http"
)

// Module represents the Subscriber module
type Module struct {
	repository *persistence.PgSubscriberRepository
	service    application.SubscriberService
	handler    *subscriberHttp.SubscriberHandler
}

// NewModule creates and initializes the Subscriber module
func NewModule(db *sqlx.DB) *Module {
	repository := persistence.NewSubscriberRepository(db)
	service := application.NewSubscriberService(repository)
	handler := subscriberHttp.NewSubscriberHandler(service)

	return &Module{
		repository: repository,
		service:    service,
		handler:    handler,
	}
}

// Service returns the subscriber service
func (m *Module) Service() application.SubscriberService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *subscriberHttp.SubscriberHandler {
	return m.handler
}
