package menu

import (
	"net/url"
	"strings"

	"github.com/meusite/cms/internal/store"
)

// TargetKind classifies where a menu item leads when rendered.
type TargetKind string

const (
	// TargetKindPath is an in-app navigation path.
	TargetKindPath TargetKind = "path"
	// TargetKindExternal opens outside the app in a new context.
	TargetKindExternal TargetKind = "external"
	// TargetKindNotFound marks an unresolvable target, e.g. a dangling
	// reference left behind by a deleted page.
	TargetKindNotFound TargetKind = "not_found"
)

// Target is the render-side classification of one menu item.
type Target struct {
	Kind TargetKind
	// Path is set for TargetKindPath.
	Path string
	// URL is set for TargetKindExternal.
	URL string
}

// reservedPaths maps well-known slugs onto their fixed top-level
// routes. Every other internal slug becomes "/" + slug.
var reservedPaths = map[string]string{
	"home":     "/",
	"servicos": "/servicos",
	"site":     "/site",
	"alex":     "/alex",
}

// ResolveTarget classifies a menu item's navigation target. It is a
// pure function: whether an internal slug still resolves to a stored
// page is decided at render time, not here.
func ResolveTarget(item store.MenuItem) Target {
	switch item.Type {
	case store.MenuItemTypeInternal:
		if item.InternalLink == nil || *item.InternalLink == "" {
			return Target{Kind: TargetKindNotFound}
		}
		if path, ok := reservedPaths[*item.InternalLink]; ok {
			return Target{Kind: TargetKindPath, Path: path}
		}
		return Target{Kind: TargetKindPath, Path: "/" + *item.InternalLink}
	case store.MenuItemTypeIframe:
		if item.ExternalURL == nil || *item.ExternalURL == "" {
			return Target{Kind: TargetKindNotFound}
		}
		return Target{Kind: TargetKindPath, Path: IframePath(*item.ExternalURL)}
	case store.MenuItemTypeExternal:
		if item.ExternalURL == nil || *item.ExternalURL == "" {
			return Target{Kind: TargetKindNotFound}
		}
		return Target{Kind: TargetKindExternal, URL: *item.ExternalURL}
	default:
		return Target{Kind: TargetKindNotFound}
	}
}

// IframePath builds the embedded-viewer route for a raw URL, forcing
// an http scheme when the stored value carries none.
func IframePath(raw string) string {
	return "/iframe/" + url.PathEscape(EnsureScheme(raw))
}

// EnsureScheme prefixes http:// when the value lacks an http or https
// scheme.
func EnsureScheme(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "http://" + raw
}
