package vcs

// CfgUpload holds settings for a batch upload run
type CfgUpload struct {
	BatchSize     int
	MessagePrefix string
}
