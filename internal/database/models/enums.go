package models

// TeamRole defines the role a team member works in
type TeamRole string

const (
	TeamRolePhotographer  TeamRole = "photographer"
	TeamRoleVideographer  TeamRole = "videographer"
	TeamRoleEditor        TeamRole = "editor"
	TeamRoleManager       TeamRole = "manager"
	TeamRoleProduction    TeamRole = "production"
	TeamRoleAlbumDesigner TeamRole = "album_designer"
)

// AvailabilityStatus is a team member's status on a given date
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// Stage is a phase of the event production pipeline
type Stage string

const (
	StagePreProduction  Stage = "pre-production"
	StageProduction     Stage = "production"
	StagePostProduction Stage = "post-production"
	StageCompleted      Stage = "completed"
)

// AssignmentStatus is the acceptance state of an event assignment
type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusAccepted AssignmentStatus = "accepted"
	AssignmentStatusDeclined AssignmentStatus = "declined"
)

// DeliverableType is the kind of client-facing output
type DeliverableType string

const (
	DeliverableTypePhotos DeliverableType = "photos"
	DeliverableTypeVideos DeliverableType = "videos"
	DeliverableTypeAlbum  DeliverableType = "album"
)

// DeliverableStatus is the fulfilment state of a deliverable
type DeliverableStatus string

const (
	DeliverableStatusPending           DeliverableStatus = "pending"
	DeliverableStatusInProgress        DeliverableStatus = "in-progress"
	DeliverableStatusDelivered         DeliverableStatus = "delivered"
	DeliverableStatusRevisionRequested DeliverableStatus = "revision-requested"
	DeliverableStatusCompleted         DeliverableStatus = "completed"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRolePhotographer, TeamRoleVideographer, TeamRoleEditor, TeamRoleManager, TeamRoleProduction, TeamRoleAlbumDesigner:
		return true
	}
	return false
}

// IsValid checks if the AvailabilityStatus is valid
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// IsValid checks if the Stage is valid
func (s Stage) IsValid() bool {
	switch s {
	case StagePreProduction, StageProduction, StagePostProduction, StageCompleted:
		return true
	}
	return false
}

// Next returns the stage that follows s, or false for the last stage
func (s Stage) Next() (Stage, bool) {
	switch s {
	case StagePreProduction:
		return StageProduction, true
	case StageProduction:
		return StagePostProduction, true
	case StagePostProduction:
		return StageCompleted, true
	}
	return "", false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusDeclined:
		return true
	}
	return false
}

// IsValid checks if the DeliverableType is valid
func (t DeliverableType) IsValid() bool {
	switch t {
	case DeliverableTypePhotos, DeliverableTypeVideos, DeliverableTypeAlbum:
		return true
	}
	return false
}

// IsValid checks if the DeliverableStatus is valid
func (s DeliverableStatus) IsValid() bool {
	switch s {
	case DeliverableStatusPending, DeliverableStatusInProgress, DeliverableStatusDelivered,
		DeliverableStatusRevisionRequested, DeliverableStatusCompleted:
		return true
	}
	return false
}
