package agentfile

import (
	"time"

	"github.com/massimocristi1970/hr-dashboard/internal/pkg/validator"
)

type UploadFileMetadataRequest struct {
	Filename        string `json:"filename"`
	FileDescription string `json:"file_description,omitempty"`
	OneDriveFileURL string `json:"onedrive_file_url"`
	FileSizeBytes   int64  `json:"file_size_bytes,omitempty"`
	FileType        string `json:"file_type,omitempty"`
}

func (r *UploadFileMetadataRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Filename) {
		errs = append(errs, validator.ValidationError{
			Field:   "filename",
			Message: "filename is required",
		})
	}

	if validator.IsEmpty(r.OneDriveFileURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "onedrive_file_url",
			Message: "onedrive_file_url is required",
		})
	} else if !validator.IsValidURL(r.OneDriveFileURL) {
		errs = append(errs, validator.ValidationError{
			Field:   "onedrive_file_url",
			Message: "onedrive_file_url must be a valid URL",
		})
	}

	if r.FileSizeBytes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "file_size_bytes",
			Message: "file_size_bytes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AgentFileResponse struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	FileDescription string    `json:"file_description"`
	OneDriveFileURL string    `json:"onedrive_file_url"`
	FileSizeBytes   int64     `json:"file_size_bytes"`
	FileType        string    `json:"file_type"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

func NewAgentFileResponse(f AgentFile) AgentFileResponse {
	return AgentFileResponse{
		ID:              f.ID,
		Filename:        f.Filename,
		FileDescription: f.FileDescription,
		OneDriveFileURL: f.OneDriveFileURL,
		FileSizeBytes:   f.FileSizeBytes,
		FileType:        f.FileType,
		UploadedAt:      f.UploadedAt,
	}
}

func NewAgentFileResponses(files []AgentFile) []AgentFileResponse {
	out := make([]AgentFileResponse, len(files))
	for i, f := range files {
		out[i] = NewAgentFileResponse(f)
	}
	return out
}
