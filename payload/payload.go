// Package payload reads and writes IVMS101 payloads whose version is not
// known in advance.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2020"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2023"
)

var (
	ErrEmptyPayload   = errors.New("empty IVMS101 payload")
	ErrInvalidPayload = errors.New("invalid IVMS101 payload")
)

// shape holds just enough of a payload to tell the two versions apart.
type shape struct {
	Originator      map[string]json.RawMessage `json:"originator"`
	Beneficiary     map[string]json.RawMessage `json:"beneficiary"`
	PayloadMetadata *struct {
		PayloadVersion ivms101.PayloadVersionCode `json:"payloadVersion"`
	} `json:"payloadMetadata"`
}

func (s shape) version() (ivms101.PayloadVersionCode, error) {
	var names2020, names2023 []string
	for _, list := range []struct {
		fields map[string]json.RawMessage
		v2020  string
		v2023  string
	}{
		{s.Originator, "originatorPersons", "originatorPerson"},
		{s.Beneficiary, "beneficiaryPersons", "beneficiaryPerson"},
	} {
		if _, ok := list.fields[list.v2020]; ok {
			names2020 = append(names2020, list.v2020)
		}
		if _, ok := list.fields[list.v2023]; ok {
			names2023 = append(names2023, list.v2023)
		}
	}

	switch {
	case len(names2020) > 0 && len(names2023) > 0:
		return "", fmt.Errorf("%w: mixes 2020 person lists %v with 2023 person lists %v", ErrInvalidPayload, names2020, names2023)
	case len(names2023) > 0:
		return ivms101.PayloadVersion2023, nil
	case len(names2020) > 0:
		return ivms101.PayloadVersion2020, nil
	case s.PayloadMetadata != nil && s.PayloadMetadata.PayloadVersion == ivms101.PayloadVersion2023:
		return ivms101.PayloadVersion2023, nil
	default:
		return ivms101.PayloadVersion2020, nil
	}
}

// Decode reads a JSON payload of either version. The person list field names
// decide the schema; the payload version is only consulted when the person
// lists are missing. A payload naming person lists of both versions is
// rejected.
func Decode(r io.Reader) (ivms101.Record, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyPayload
	}

	var s shape
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	version, err := s.version()
	if err != nil {
		return nil, err
	}

	var record ivms101.Record
	switch version {
	case ivms101.PayloadVersion2023:
		record = &v2023.IVMS101{}
	default:
		record = &v2020.IVMS101{}
	}
	if err := json.Unmarshal(body, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return record, nil
}

func Encode(w io.Writer, record ivms101.Record) error {
	return json.NewEncoder(w).Encode(record)
}
