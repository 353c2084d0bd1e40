package model

// VersionInfo contains version and feature information for the application.
type VersionInfo struct {
	AppVersion string          `json:"app_version"`
	Store      string          `json:"store"`
	Features   map[string]bool `json:"features"`
}
