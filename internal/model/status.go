package model

// InstallStatus represents the status of an install request
type InstallStatus string

const (
	// InstallStatusPending means the request was accepted but nothing happened yet
	InstallStatusPending InstallStatus = "Pending"

	// InstallStatusQueued means the request is waiting behind another one
	InstallStatusQueued InstallStatus = "Queued"

	// InstallStatusIgnored means the request was dropped, installs are not implemented
	InstallStatusIgnored InstallStatus = "Ignored"
)

// String returns the string representation of InstallStatus
func (s InstallStatus) String() string {
	return string(s)
}

// IsFinished returns true if nothing more will happen to the request
func (s InstallStatus) IsFinished() bool {
	return s == InstallStatusIgnored
}
