package facility

import "time"

type FacilityType string

const (
	TypeCourt  FacilityType = "court"
	TypeGround FacilityType = "ground"
	TypeRoom   FacilityType = "room"
)

func ValidType(t FacilityType) bool {
	switch t {
	case TypeCourt, TypeGround, TypeRoom:
		return true
	}
	return false
}

// AvailabilityWindow is one weekly opening window. DayOfWeek runs 0
// (Sunday) through 6 (Saturday); times are "HH:MM".
type AvailabilityWindow struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

type Facility struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Type                 FacilityType         `json:"type"`
	Capacity             int                  `json:"capacity,omitempty"`
	Description          string               `json:"description,omitempty"`
	AvailabilitySchedule []AvailabilityWindow `json:"availabilitySchedule"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}
