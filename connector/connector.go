package connector

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	apperrors "lineage-engine/errors"
)

// Side marks which end of a column relationship a connector sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Connector is the addressable identity of one column endpoint on one
// side of a relationship. It is a derived value with no lifecycle of
// its own; identical triples always encode to the identical ID.
type Connector struct {
	Side   Side
	Model  string
	Column string
}

// ID encodes the triple into a stable string key. Each part is quoted
// so a separator character inside a model or column name can never
// alias a different triple.
func (c Connector) ID() string {
	var b strings.Builder
	b.Grow(len(c.Side) + len(c.Model) + len(c.Column) + 8)
	b.WriteString(strconv.Quote(string(c.Side)))
	b.WriteByte(':')
	b.WriteString(strconv.Quote(c.Model))
	b.WriteByte(':')
	b.WriteString(strconv.Quote(c.Column))
	return b.String()
}

// UUID returns a deterministic UUID for the connector, for compact
// correlation in structured logs.
func (c Connector) UUID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(c.ID()))
}

// ID is the convenience form used by hover-path callers.
func ID(side Side, model, column string) string {
	return Connector{Side: side, Model: model, Column: column}.ID()
}

// Parse decodes an encoded connector ID back into its triple.
func Parse(id string) (Connector, error) {
	side, rest, err := readPart(id)
	if err != nil {
		return Connector{}, err
	}
	model, rest, err := readPart(rest)
	if err != nil {
		return Connector{}, err
	}
	column, rest, err := readLastPart(rest)
	if err != nil {
		return Connector{}, err
	}
	if rest != "" {
		return Connector{}, apperrors.WrapErrorf(apperrors.ErrMalformedConnector, "trailing input %q", rest)
	}

	s := Side(side)
	if s != SideLeft && s != SideRight {
		return Connector{}, apperrors.WrapErrorf(apperrors.ErrUnknownSide, "side %q", side)
	}

	return Connector{Side: s, Model: model, Column: column}, nil
}

// readPart consumes one quoted part plus the separator that follows it.
func readPart(s string) (string, string, error) {
	part, rest, err := readLastPart(s)
	if err != nil {
		return "", "", err
	}
	if !strings.HasPrefix(rest, ":") {
		return "", "", apperrors.WrapError(apperrors.ErrMalformedConnector, "missing separator")
	}
	return part, rest[1:], nil
}

// readLastPart consumes one quoted part without requiring a separator.
func readLastPart(s string) (string, string, error) {
	quoted, err := strconv.QuotedPrefix(s)
	if err != nil {
		return "", "", apperrors.WrapError(apperrors.ErrMalformedConnector, "invalid quoting")
	}
	part, err := strconv.Unquote(quoted)
	if err != nil {
		return "", "", apperrors.WrapError(apperrors.ErrMalformedConnector, "invalid quoting")
	}
	return part, s[len(quoted):], nil
}
