package download

import (
	"github.com/ytget/storefront/internal/model"
)

// Installer defines the interface for the install service.
type Installer interface {
	SetUpdateCallback(func(*model.InstallRequest))
	Request(card model.GameCard) (*model.InstallRequest, error)
	GetRequest(id string) (*model.InstallRequest, bool)
	GetAllRequests() []*model.InstallRequest
}
