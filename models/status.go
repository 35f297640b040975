package models

// WorkflowStatus is the lifecycle state of a ProcessCategory. The numeric
// values are part of the stored data and must not change.
type WorkflowStatus int

const (
	WorkflowStatusActive   WorkflowStatus = 1
	WorkflowStatusArchived WorkflowStatus = 2
	WorkflowStatusInactive WorkflowStatus = 3
	WorkflowStatusDraft    WorkflowStatus = 6
)

var workflowStatusHumanName = map[WorkflowStatus]string{
	WorkflowStatusActive:   "Activo",
	WorkflowStatusArchived: "Archivado",
	WorkflowStatusInactive: "Inactivo",
	WorkflowStatusDraft:    "En borrador",
}

func (s WorkflowStatus) ToHuman() string {
	if human, exist := workflowStatusHumanName[s]; exist {
		return human
	}
	return "Desconocido"
}

func (s WorkflowStatus) IsValid() bool {
	_, exist := workflowStatusHumanName[s]
	return exist
}

// allowedTransitions is the single source of truth for lifecycle changes.
// Archived and Inactive are terminal values reachable only by data correction.
var allowedTransitions = map[WorkflowStatus][]WorkflowStatus{
	WorkflowStatusDraft: {WorkflowStatusActive},
}

func (s WorkflowStatus) IsAllowChange(to WorkflowStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// RequestStatus is the free-form status of a RequestGeneral row.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "Pendiente"
	RequestStatusInProgress RequestStatus = "En proceso"
	RequestStatusResolved   RequestStatus = "Resuelta"
	RequestStatusCancelled  RequestStatus = "Cancelada"
)

// StatusCase groups request statuses for listing purposes. Listings that get
// no explicit status filter fall back to a configured default case.
type StatusCase int

const (
	StatusCaseOpen       StatusCase = 1
	StatusCaseClosed     StatusCase = 2
	StatusCaseCancelled  StatusCase = 3
	StatusCaseInProgress StatusCase = 4
)

// TaskStatus is the state of a single task instance, independent from the
// parent request's status.
type TaskStatus int

const (
	TaskStatusPending    TaskStatus = 1
	TaskStatusInProgress TaskStatus = 2
	TaskStatusDone       TaskStatus = 3
)

var taskStatusHumanName = map[TaskStatus]string{
	TaskStatusPending:    "Pendiente",
	TaskStatusInProgress: "En proceso",
	TaskStatusDone:       "Finalizada",
}

func (s TaskStatus) ToHuman() string {
	if human, exist := taskStatusHumanName[s]; exist {
		return human
	}
	return "Desconocido"
}
