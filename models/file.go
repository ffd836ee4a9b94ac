package models

// FileInfo describes one PDF found in the documents folder.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
