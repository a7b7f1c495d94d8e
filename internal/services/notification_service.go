package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/ws"
)

// Notifier broadcasts advisory UI-refresh events. Fire-and-forget: failures
// are swallowed, nothing is persisted or retried.
type Notifier interface {
	JobCreated(job *models.Job)
	JobUpdated(job *models.Job)
	JobDeleted(jobID string)
	CompanyUpdated(company *models.Company)
}

// WSNotifier pushes events through the websocket hub. Constructed once in
// app wiring and injected into the services that emit events.
type WSNotifier struct {
	hub *ws.Hub
}

func NewWSNotifier(hub *ws.Hub) *WSNotifier {
	return &WSNotifier{hub: hub}
}

func (n *WSNotifier) JobCreated(job *models.Job) {
	n.hub.Broadcast("job.created", dto.NewJobResponse(job))
}

func (n *WSNotifier) JobUpdated(job *models.Job) {
	n.hub.Broadcast("job.updated", dto.NewJobResponse(job))
}

func (n *WSNotifier) JobDeleted(jobID string) {
	n.hub.Broadcast("job.deleted", map[string]string{"id": jobID})
}

func (n *WSNotifier) CompanyUpdated(company *models.Company) {
	n.hub.Broadcast("company.updated", dto.NewCompanyResponse(company))
}

// NoopNotifier for tests and tooling.
type NoopNotifier struct{}

func (NoopNotifier) JobCreated(*models.Job)        {}
func (NoopNotifier) JobUpdated(*models.Job)        {}
func (NoopNotifier) JobDeleted(string)             {}
func (NoopNotifier) CompanyUpdated(*models.Company) {}
