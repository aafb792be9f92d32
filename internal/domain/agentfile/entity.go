package agentfile

import "time"

// AgentFile is bookkeeping metadata for a file that lives in OneDrive.
// The file contents are never stored or proxied here.
type AgentFile struct {
	ID              string
	EmployeeID      string
	Filename        string
	FileDescription string
	OneDriveFileURL string
	FileSizeBytes   int64
	FileType        string
	UploadedAt      time.Time
}
