package person

import (
	"github.com/dandesousa/elevator-simulation/building"
	"github.com/dandesousa/elevator-simulation/ident"
)

type Person struct {
	ID       int
	UUID     string
	Schedule *Schedule
	location building.Floor
}

func New(id ident.ID, location building.Floor) *Person {
	return &Person{
		ID:       id.Seq,
		UUID:     id.UUID.String(),
		Schedule: &Schedule{},
		location: location,
	}
}

// NewInBuilding is New with a schedule limited to the floors of b.
func NewInBuilding(id ident.ID, location building.Floor, b *building.Building) *Person {
	p := New(id, location)
	p.Schedule = NewSchedule(b.Top())
	return p
}

func (p *Person) Location() building.Floor {
	return p.location
}

func (p *Person) SetLocation(floor building.Floor) {
	p.location = floor
}
