// Package catalog loads the static content the storefront renders: the feed
// (search placeholder, banner, game set) and the onboarding pages. Content is
// embedded YAML so it ships inside the binary and is immutable per session.
package catalog
