package model

import "time"

// InstallRequest records a tap on a card's download control
type InstallRequest struct {
	ID          string
	CardID      string
	Title       string
	Status      InstallStatus
	RequestedAt time.Time
}
