package domain

import (
	"fmt"
	"regexp"
)

// AccessLevel is the authorization tier held by an Identity.
// Tiers are strictly ordered: handler > worker > member.
type AccessLevel string

const (
	LevelHandler AccessLevel = "handler"
	LevelWorker  AccessLevel = "worker"
	LevelMember  AccessLevel = "member"
)

// Role codes embedded in a DataLab ID.
const (
	RoleCodeHandler = "hd"
	RoleCodeWorker  = "wk"
	RoleCodeMember  = "mb"
)

// idPattern is the DataLab ID format: YY + role code + NNN (e.g. 25hd001).
var idPattern = regexp.MustCompile(`^\d{2}(hd|wk|mb)\d{3}$`)

var roleCodeLevels = map[string]AccessLevel{
	RoleCodeHandler: LevelHandler,
	RoleCodeWorker:  LevelWorker,
	RoleCodeMember:  LevelMember,
}

// ParseAccessLevel converts a raw string into an AccessLevel.
func ParseAccessLevel(s string) (AccessLevel, error) {
	l := AccessLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccessLevel, s)
	}
	return l, nil
}

// Valid reports whether l is one of the three known tiers.
func (l AccessLevel) Valid() bool {
	return l.rank() > 0
}

func (l AccessLevel) rank() int {
	switch l {
	case LevelHandler:
		return 3
	case LevelWorker:
		return 2
	case LevelMember:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether an actor holding l may enter a route that
// requires the given tier. An empty requirement is treated as member.
// Unknown tiers on either side never satisfy.
func (l AccessLevel) Satisfies(required AccessLevel) bool {
	if required == "" {
		required = LevelMember
	}
	if !l.Valid() || !required.Valid() {
		return false
	}
	return l.rank() >= required.rank()
}

// IsValidID reports whether s matches the DataLab ID format exactly.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}

// LevelFromID decodes the access tier embedded in a DataLab ID.
func LevelFromID(id string) (AccessLevel, bool) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return "", false
	}
	l, ok := roleCodeLevels[m[1]]
	return l, ok
}

// Identity is one registered actor. It is also the exact payload stored in
// the session slot.
type Identity struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Department  string      `json:"department"`
	AccessLevel AccessLevel `json:"accessLevel"`
	Email       string      `json:"email"`
}

// Validate checks the structural invariants of an Identity: every field is
// set, the ID is well formed and its role code agrees with AccessLevel.
func (i Identity) Validate() error {
	if i.Name == "" || i.Role == "" || i.Department == "" || i.Email == "" {
		return fmt.Errorf("identity %q: missing descriptive field", i.ID)
	}
	level, ok := LevelFromID(i.ID)
	if !ok {
		return fmt.Errorf("identity %q: %w", i.ID, ErrMalformedID)
	}
	if !i.AccessLevel.Valid() {
		return fmt.Errorf("identity %q: %w: %q", i.ID, ErrUnknownAccessLevel, i.AccessLevel)
	}
	if level != i.AccessLevel {
		return fmt.Errorf("identity %q: role code implies %s, record says %s", i.ID, level, i.AccessLevel)
	}
	return nil
}
