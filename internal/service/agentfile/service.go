package agentfile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/agentfile"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
)

// Service tracks OneDrive file metadata per employee. Contents stay in
// OneDrive; this is bookkeeping only.
type Service struct {
	agentfile.AgentFileRepository
	employee.EmployeeRepository
}

func NewService(fileRepository agentfile.AgentFileRepository, employeeRepository employee.EmployeeRepository) *Service {
	return &Service{
		AgentFileRepository: fileRepository,
		EmployeeRepository:  employeeRepository,
	}
}

func (s *Service) MyFiles(ctx context.Context, actor auth.Actor) ([]agentfile.AgentFile, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}
	return s.AgentFileRepository.ListByEmployee(ctx, emp.ID)
}

func (s *Service) Upload(ctx context.Context, actor auth.Actor, req agentfile.UploadFileMetadataRequest) (agentfile.AgentFile, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, actor.Email)
	if err != nil {
		return agentfile.AgentFile{}, err
	}

	file := agentfile.AgentFile{
		ID:              uuid.NewString(),
		EmployeeID:      emp.ID,
		Filename:        req.Filename,
		FileDescription: req.FileDescription,
		OneDriveFileURL: req.OneDriveFileURL,
		FileSizeBytes:   req.FileSizeBytes,
		FileType:        req.FileType,
	}

	created, err := s.AgentFileRepository.Create(ctx, file)
	if err != nil {
		return agentfile.AgentFile{}, fmt.Errorf("failed to create file record: %w", err)
	}

	return created, nil
}

// Delete removes a metadata record. Only the owning employee or an
// admin may delete; the record is looked up before authorization so an
// unknown id reports not-found either way.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id string) error {
	file, err := s.AgentFileRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin {
		emp, err := s.EmployeeRepository.GetByEmail(ctx, actor.Email)
		if err != nil {
			return err
		}
		if emp.ID != file.EmployeeID {
			return auth.ErrForbidden
		}
	}

	return s.AgentFileRepository.Delete(ctx, id)
}
