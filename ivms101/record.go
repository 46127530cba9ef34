package ivms101

import (
	"errors"
	"fmt"
)

// PayloadVersionCode identifies the IVMS101 version a payload complies with.
type PayloadVersionCode string

const (
	PayloadVersion2020 PayloadVersionCode = "101"
	PayloadVersion2023 PayloadVersionCode = "101.2023"
)

var ErrUnknownVersion = errors.New("unknown IVMS101 payload version")

var versionAliases = map[string]PayloadVersionCode{
	"101":      PayloadVersion2020,
	"2020":     PayloadVersion2020,
	"101.2023": PayloadVersion2023,
	"2023":     PayloadVersion2023,
}

// ParseVersion accepts either the wire value of a payload version ("101",
// "101.2023") or the year it was published ("2020", "2023").
func ParseVersion(s string) (PayloadVersionCode, error) {
	v, ok := versionAliases[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	return v, nil
}

func (v PayloadVersionCode) String() string {
	return string(v)
}

// Record is an IVMS101 payload of either version. It is implemented by
// *v2020.IVMS101 and *v2023.IVMS101 only.
type Record interface {
	// DeclaredVersion returns the payload version the record carries in its
	// payload metadata, or an empty code when it carries none.
	DeclaredVersion() PayloadVersionCode
}
