package library

import (
	"github.com/JESURAJA7/Roger-Keys/internal/modules/library/application"
	libraryHttp "github.com/JESURAJA7/Roger-Keys/internal/modules/library/interfaces/http"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/infrastructure/config"
)

// Module represents the local sample library module
type Module struct {
	service application.LibraryService
	handler *libraryHttp.LibraryHandler
}

// NewModule creates and initializes the Library module
func NewModule(cfg config.LibraryConfig, defaultPageSize int) *Module {
	service := application.NewLibraryService(cfg)
	handler := libraryHttp.NewLibraryHandler(service, defaultPageSize)

	return &Module{
		service: service,
		handler: handler,
	}
}

// Service returns the library service
func (m *Module) Service() application.LibraryService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *libraryHttp.LibraryHandler {
	return m.handler
}
