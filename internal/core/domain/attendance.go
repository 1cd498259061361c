package domain

import "time"

// AttendanceRecord captures a staff member's working day. A record is "open"
// while ClockOut is nil; at most one open record exists per staff member and
// date.
type AttendanceRecord struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	StaffID    string     `json:"staff_id" bson:"staff_id"`
	Username   string     `json:"username" bson:"username"`
	Department Department `json:"department,omitempty" bson:"department,omitempty"`
	Date       string     `json:"date" bson:"date"` // YYYY-MM-DD
	ClockIn    time.Time  `json:"clock_in" bson:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty" bson:"clock_out,omitempty"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
}
