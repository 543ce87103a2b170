package models

import "time"

// TimeModel timestamps are truncated to milliseconds, the precision MongoDB
// keeps, so a value read back equals the value written.
type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	currentTime := now()
	m.CreatedAt = currentTime
	m.UpdatedAt = currentTime
}

func (m *TimeModel) SetUpdatedAt() {
	m.UpdatedAt = now()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
