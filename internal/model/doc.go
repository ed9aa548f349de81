package model

// Package model defines the data shared across the app: navigation routes and
// tabs, onboarding pages, feed content, and install requests. Values are plain
// structs meant to be built once and read by the UI.
