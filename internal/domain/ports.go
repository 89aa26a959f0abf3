package domain

// SourceScanner walks a project root and returns candidate source files.
type SourceScanner interface {
	Scan(rootPath string) (*ScanResult, error)
}

// ScanResult holds the outcome of walking one project root.
type ScanResult struct {
	RootPath    string   `json:"root_path"`
	SourceFiles []string `json:"source_files"`
}

// SourceParser turns raw file content into a structural summary.
type SourceParser interface {
	Parse(content []byte) (*Summary, error)
}

// GitInfo reads version-control metadata for report annotation.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
