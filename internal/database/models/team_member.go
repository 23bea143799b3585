package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Availability maps an ISO date to the member's status on that date.
// A missing date means available.
type Availability map[string]AvailabilityStatus

// TeamMember represents a photographer, videographer, editor or other crew member
type TeamMember struct {
	BaseModel
	Name         string       `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Role         TeamRole     `json:"role" gorm:"type:varchar(50);not null;index" validate:"required"`
	Email        string       `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone        string       `json:"phone" gorm:"size:50" validate:"max=50"`
	Availability Availability `json:"availability" gorm:"type:jsonb"`
	IsFreelancer bool         `json:"is_freelancer" gorm:"default:false"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// StatusOn returns the availability status on date
func (a Availability) StatusOn(date string) AvailabilityStatus {
	if status, ok := a[date]; ok && status != "" {
		return status
	}
	return AvailabilityAvailable
}

// IsAvailableOn reports whether the member can be booked on date
func (a Availability) IsAvailableOn(date string) bool {
	return a.StatusOn(date) == AvailabilityAvailable
}

// Clone returns a copy of the map
func (a Availability) Clone() Availability {
	out := make(Availability, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Value implements driver.Valuer
func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]AvailabilityStatus(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. Stores have held the map either as a JSON
// object or as a JSON string wrapping the object; both are accepted.
func (a *Availability) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*a = Availability{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported availability type %T", value)
	}

	parsed, err := parseAvailability(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalJSON accepts the same object / string-wrapped forms as Scan
func (a *Availability) UnmarshalJSON(data []byte) error {
	parsed, err := parseAvailability(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func parseAvailability(data []byte) (Availability, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Availability{}, nil
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("invalid availability: %w", err)
		}
		return parseAvailability([]byte(inner))
	}

	raw := map[string]AvailabilityStatus{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid availability: %w", err)
	}
	return Availability(raw), nil
}
