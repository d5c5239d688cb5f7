/*
 * Package ident issues the numeric IDs and UUIDs of simulation entities.
 * Numeric IDs count from zero per kind in issue order.
 */
package ident

import (
	"fmt"

	"github.com/dandesousa/elevator-simulation/types"

	"github.com/google/uuid"
)

type Kind int

const (
	PERSON Kind = iota
	ELEVATOR
	BANK
)

func (kind Kind) String() string {
	switch kind {
	case PERSON:
		return "person"
	case ELEVATOR:
		return "elevator"
	case BANK:
		return "bank"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}

type ID struct {
	Seq  int
	UUID uuid.UUID
}

type Issuer struct {
	next map[Kind]int
	used map[uuid.UUID]Kind
}

func NewIssuer() *Issuer {
	return &Issuer{
		next: make(map[Kind]int),
		used: make(map[uuid.UUID]Kind),
	}
}

func (issuer *Issuer) Issue(kind Kind) ID {
	id := ID{Seq: issuer.next[kind], UUID: uuid.New()}
	issuer.next[kind]++
	issuer.used[id.UUID] = kind
	return id
}

/*
 * Adopt issues the next ID of kind with a UUID taken from a definition.
 * An empty string gets a fresh UUID.
 */
func (issuer *Issuer) Adopt(kind Kind, existing string) (ID, error) {
	if existing == "" {
		return issuer.Issue(kind), nil
	}

	parsed, err := uuid.Parse(existing)
	if err != nil {
		return ID{}, types.NewConfigError(kind.String()+".uuid", "malformed uuid "+existing, err)
	}

	if _, taken := issuer.used[parsed]; taken {
		return ID{}, types.NewConfigError(kind.String()+".uuid", "duplicate uuid "+existing, nil)
	}

	id := ID{Seq: issuer.next[kind], UUID: parsed}
	issuer.next[kind]++
	issuer.used[parsed] = kind
	return id, nil
}

// Issued is the number of IDs handed out for kind.
func (issuer *Issuer) Issued(kind Kind) int {
	return issuer.next[kind]
}

func NewRunID() string {
	return uuid.NewString()
}
