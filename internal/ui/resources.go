package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

// Symbolic image references used by the catalog content
const (
	ImageStoreLogo  = "rustore_logo"
	ImageSafety     = "safety"
	ImageSmartphone = "smartphone"
	ImageGame       = "game"
)

// ImageResolver maps image references from the catalog to resources. A
// reference with a file extension is loaded from disk; anything else is a
// symbolic name backed by a theme icon.
type ImageResolver struct {
	log   logger.Logger
	cache map[string]fyne.Resource
}

// NewImageResolver creates a resolver
func NewImageResolver(log logger.Logger) *ImageResolver {
	return &ImageResolver{log: logger.OrNoop(log), cache: make(map[string]fyne.Resource)}
}

// Resolve returns the resource for ref, falling back to a generic icon.
func (r *ImageResolver) Resolve(ref string) fyne.Resource {
	if res, ok := r.cache[ref]; ok {
		return res
	}

	res := r.resolve(ref)
	r.cache[ref] = res
	return res
}

func (r *ImageResolver) resolve(ref string) fyne.Resource {
	if filepath.Ext(ref) != "" {
		res, err := fyne.LoadResourceFromPath(ref)
		if err == nil {
			return res
		}
		r.log.Warn("image %q not loaded: %v", ref, err)
		return theme.BrokenImageIcon()
	}

	switch ref {
	case ImageStoreLogo:
		return theme.HomeIcon()
	case ImageSafety:
		return theme.ConfirmIcon()
	case ImageSmartphone:
		return theme.ComputerIcon()
	case ImageGame:
		return theme.MediaPlayIcon()
	}
	r.log.Debug("unknown image reference %q", ref)
	return theme.QuestionIcon()
}

// TabIcon returns the bottom bar icon of a tab route
func TabIcon(route model.Route) fyne.Resource {
	switch route {
	case model.RouteFeed:
		return theme.HomeIcon()
	case model.RouteApps:
		return theme.GridIcon()
	case model.RouteGames:
		return theme.MediaPlayIcon()
	case model.RouteKiosk:
		return theme.DocumentIcon()
	case model.RouteProfile:
		return theme.AccountIcon()
	}
	return theme.QuestionIcon()
}
