package agentfile

import "context"

type AgentFileRepository interface {
	Create(ctx context.Context, file AgentFile) (AgentFile, error)
	GetByID(ctx context.Context, id string) (AgentFile, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AgentFile, error)
	Delete(ctx context.Context, id string) error
}
