package entity

import "time"

// Cage jaula física del bioterio. Es la "ubicación" de un grupo animal.
type Cage struct {
	ID        string
	Name      string // único
	Location  string
	Capacity  int
	CreatedAt time.Time
}
