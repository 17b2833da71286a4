package menu

import (
	"testing"

	"github.com/meusite/cms/internal/store"
)

func TestResolveTargetReservedSlugs(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{slug: "home", want: "/"},
		{slug: "servicos", want: "/servicos"},
		{slug: "site", want: "/site"},
		{slug: "alex", want: "/alex"},
		{slug: "minha-pagina", want: "/minha-pagina"},
	}

	for _, test := range tests {
		link := test.slug
		target := ResolveTarget(store.MenuItem{Type: store.MenuItemTypeInternal, InternalLink: &link})
		if target.Kind != TargetKindPath {
			t.Fatalf("expected path target for %q, got %q", test.slug, target.Kind)
		}
		if target.Path != test.want {
			t.Fatalf("expected path %q for %q, got %q", test.want, test.slug, target.Path)
		}
	}
}

func TestResolveTargetIframeAddsSchemeAndEscapes(t *testing.T) {
	url := "example.com/page?a=b"
	target := ResolveTarget(store.MenuItem{Type: store.MenuItemTypeIframe, ExternalURL: &url})

	if target.Kind != TargetKindPath {
		t.Fatalf("expected path target, got %q", target.Kind)
	}
	if target.Path != "/iframe/http:%2F%2Fexample.com%2Fpage%3Fa=b" {
		t.Fatalf("unexpected iframe path: %q", target.Path)
	}
}

func TestResolveTargetIframeKeepsExistingScheme(t *testing.T) {
	url := "https://example.com"
	target := ResolveTarget(store.MenuItem{Type: store.MenuItemTypeIframe, ExternalURL: &url})

	if target.Path != "/iframe/https:%2F%2Fexample.com" {
		t.Fatalf("unexpected iframe path: %q", target.Path)
	}
}

func TestResolveTargetExternalOpensOutside(t *testing.T) {
	url := "https://example.com"
	target := ResolveTarget(store.MenuItem{Type: store.MenuItemTypeExternal, ExternalURL: &url})

	if target.Kind != TargetKindExternal {
		t.Fatalf("expected external target, got %q", target.Kind)
	}
	if target.URL != "https://example.com" {
		t.Fatalf("external url must pass through verbatim, got %q", target.URL)
	}
	if target.Path != "" {
		t.Fatalf("external targets are not in-app routes, got %q", target.Path)
	}
}

func TestResolveTargetMissingTargetIsNotFound(t *testing.T) {
	items := []store.MenuItem{
		{Type: store.MenuItemTypeInternal},
		{Type: store.MenuItemTypeIframe},
		{Type: store.MenuItemTypeExternal},
		{Type: "banner"},
	}
	for _, item := range items {
		if target := ResolveTarget(item); target.Kind != TargetKindNotFound {
			t.Fatalf("expected not-found target for %+v, got %q", item, target.Kind)
		}
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "example.com", want: "http://example.com"},
		{raw: "http://example.com", want: "http://example.com"},
		{raw: "https://example.com", want: "https://example.com"},
		{raw: "HTTPS://example.com", want: "HTTPS://example.com"},
	}
	for _, test := range tests {
		if got := EnsureScheme(test.raw); got != test.want {
			t.Fatalf("EnsureScheme(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}
