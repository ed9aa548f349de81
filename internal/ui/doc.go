// Package ui contains the Fyne user interface of the storefront. RootUI hosts
// the current screen above the bottom navigation bar and swaps screens when
// the navigation controller reports a new current entry.
package ui
