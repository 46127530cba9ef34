package converter

import (
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2020"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2023"
)

// DetectVersion reports the version a record declares. Only a payload
// metadata stamped 101.2023 counts as 2023; anything else, including a
// record with no payload metadata at all, is 2020.
func DetectVersion(record ivms101.Record) ivms101.PayloadVersionCode {
	if record != nil && record.DeclaredVersion() == ivms101.PayloadVersion2023 {
		return ivms101.PayloadVersion2023
	}
	return ivms101.PayloadVersion2020
}

// EnsureVersion returns the record in the target version. A record that
// already has the target version and shape is returned as it is, otherwise
// it is converted. Any target other than 101.2023 means 2020.
//
// A 2023-shaped record that does not declare 101.2023 is rebuilt with the
// proper discriminator when 2023 is requested. Records of any other type are
// returned unchanged.
func EnsureVersion(target ivms101.PayloadVersionCode, record ivms101.Record) ivms101.Record {
	if target != ivms101.PayloadVersion2023 {
		target = ivms101.PayloadVersion2020
	}
	switch r := record.(type) {
	case nil:
		return nil
	case *v2020.IVMS101:
		if target == ivms101.PayloadVersion2020 {
			return r
		}
		return ConvertTo2023(r)
	case *v2023.IVMS101:
		if target == ivms101.PayloadVersion2020 {
			return ConvertFrom2023(r)
		}
		if DetectVersion(r) == ivms101.PayloadVersion2023 {
			return r
		}
		return ConvertTo2023(ConvertFrom2023(r))
	default:
		return record
	}
}

// EnsureV2020 is EnsureVersion for callers that want the concrete 2020 type.
func EnsureV2020(record ivms101.Record) *v2020.IVMS101 {
	converted, _ := EnsureVersion(ivms101.PayloadVersion2020, record).(*v2020.IVMS101)
	return converted
}

// EnsureV2023 is EnsureVersion for callers that want the concrete 2023 type.
func EnsureV2023(record ivms101.Record) *v2023.IVMS101 {
	converted, _ := EnsureVersion(ivms101.PayloadVersion2023, record).(*v2023.IVMS101)
	return converted
}
