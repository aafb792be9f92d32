package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/agentfile"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/response"
	agentfileservice "github.com/massimocristi1970/hr-dashboard/internal/service/agentfile"
)

type FileHandler interface {
	MyFiles(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	fileService *agentfileservice.Service
}

func NewFileHandler(fileService *agentfileservice.Service) FileHandler {
	return &FileHandlerImpl{fileService: fileService}
}

// MyFiles implements FileHandler.
func (f *FileHandlerImpl) MyFiles(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	files, err := f.fileService.MyFiles(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, agentfile.NewAgentFileResponses(files))
}

// Upload implements FileHandler. Only the OneDrive metadata is stored;
// the file itself never passes through this service.
func (f *FileHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	var req agentfile.UploadFileMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := f.fileService.Upload(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "File recorded", agentfile.NewAgentFileResponse(created))
}

// Delete implements FileHandler.
func (f *FileHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOrFail(w, r)
	if !ok {
		return
	}

	if err := f.fileService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File deleted", nil)
}
