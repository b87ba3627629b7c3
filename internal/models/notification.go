package models

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type NotificationPhase string

const (
	PhaseEntering NotificationPhase = "entering"
	PhaseExiting  NotificationPhase = "exiting"
)

type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}
