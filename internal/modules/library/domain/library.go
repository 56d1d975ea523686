package domain

import "errors"

// Folder is one subdirectory of the sample library root. FileCount counts
// only files whose name matches the configured suffix set.
type Folder struct {
	Name      string `json:"name"`
	FileCount int    `json:"fileCount"`
}

// FolderPage is the envelope for paginated folder listings
type FolderPage struct {
	Folders      []Folder `json:"folders"`
	CurrentPage  int      `json:"currentPage"`
	TotalPages   int      `json:"totalPages"`
	TotalFolders int      `json:"totalFolders"`
}

// FilePage is the envelope for paginated file listings within one folder
type FilePage struct {
	Files       []string `json:"files"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	TotalFiles  int      `json:"totalFiles"`
}

var (
	ErrFolderNameRequired = errors.New("folderName is required")
	ErrFolderNotFound     = errors.New("folder not found")
	ErrRootNotFound       = errors.New("sample library root not found")
	ErrPathOutsideRoot    = errors.New("path escapes the sample library root")
	ErrInvalidPage        = errors.New("page must be a positive integer")
	ErrInvalidLimit       = errors.New("limit must be a positive integer")
)
