package nav

// Package nav keeps the navigation back stack and the bottom tab selection in
// sync. Controller owns the stack of route entries and notifies listeners when
// the current entry changes; TabController derives the selected tab from those
// notifications and drives navigation when a tab is tapped.
