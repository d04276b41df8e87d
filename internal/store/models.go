package store

import "time"

// Angle is the lateral throwing angle relative to the target.
type Angle string

const (
	AngleLeft   Angle = "LEFT"
	AngleCenter Angle = "CENTER"
	AngleRight  Angle = "RIGHT"
)

// Valid reports whether a is one of the three known angles.
func (a Angle) Valid() bool {
	switch a {
	case AngleLeft, AngleCenter, AngleRight:
		return true
	}
	return false
}

// Environment is the optional conditions snapshot captured with each throw.
// Nil fields mean "not set".
type Environment struct {
	Weather      *string
	Humidity     *float64
	Temperature  *float64
	Soil         *string
	MolkkyWeight *float64
}

// User is a player identity.
type User struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// ThrowDraft is a staged throw attempt scoped to a (user, session) pair.
type ThrowDraft struct {
	ID        int
	UserID    int
	SessionID string
	Distance  float64
	Angle     Angle
	Env       Environment
	IsSuccess bool
	Timestamp time.Time
}

// ThrowRecord is a finalized throw attempt. Same payload as ThrowDraft
// minus the session id.
type ThrowRecord struct {
	ID        int
	UserID    int
	Distance  float64
	Angle     Angle
	Env       Environment
	IsSuccess bool
	Timestamp time.Time
}
