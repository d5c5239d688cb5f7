package types

import "time"

/*
 * One completed passenger journey
 */
type Trip struct {
	CalledAt    time.Duration
	ArrivedAt   time.Duration
	Travel      time.Duration
	Person      int
	Elevator    int
	Origin      int
	Destination int
	Direction   Direction
	Distance    int
	Description string
}

// Wait is the time spent between calling an elevator and its doors opening.
func (trip Trip) Wait() time.Duration {
	return trip.ArrivedAt - trip.CalledAt
}
