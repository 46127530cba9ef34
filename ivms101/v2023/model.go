// Package v2023 describes the IVMS101.2023 payload. Entities that did not
// change since 2020 are aliases of their v2020 counterparts.
package v2023

import (
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2020"
)

type (
	LegalPersonNameID      = v2020.LegalPersonNameID
	Address                = v2020.Address
	NationalIdentification = v2020.NationalIdentification
	DateAndPlaceOfBirth    = v2020.DateAndPlaceOfBirth
)

type NaturalPersonNameID struct {
	PrimaryIdentifier               string                            `json:"primaryIdentifier"`
	SecondaryIdentifier             string                            `json:"secondaryIdentifier,omitempty"`
	NaturalPersonNameIdentifierType ivms101.NaturalPersonNameTypeCode `json:"naturalPersonNameIdentifierType"`
}

type NaturalPerson struct {
	Name                   []NaturalPersonNameID   `json:"name"`
	GeographicAddress      []Address               `json:"geographicAddress,omitempty"`
	NationalIdentification *NationalIdentification `json:"nationalIdentification,omitempty"`
	CustomerIdentification string                  `json:"customerIdentification,omitempty"`
	DateAndPlaceOfBirth    *DateAndPlaceOfBirth    `json:"dateAndPlaceOfBirth,omitempty"`
	CountryOfResidence     ivms101.CountryCode     `json:"countryOfResidence,omitempty"`
}

type LegalPerson struct {
	Name                   []LegalPersonNameID     `json:"name"`
	GeographicAddress      []Address               `json:"geographicAddress,omitempty"`
	CustomerIdentification string                  `json:"customerIdentification,omitempty"`
	NationalIdentification *NationalIdentification `json:"nationalIdentification,omitempty"`
	CountryOfRegistration  ivms101.CountryCode     `json:"countryOfRegistration,omitempty"`
}

type Person struct {
	NaturalPerson *NaturalPerson `json:"naturalPerson,omitempty"`
	LegalPerson   *LegalPerson   `json:"legalPerson,omitempty"`
}

type Originator struct {
	OriginatorPerson []Person `json:"originatorPerson"`
	AccountNumber    []string `json:"accountNumber,omitempty"`
}

type Beneficiary struct {
	BeneficiaryPerson []Person `json:"beneficiaryPerson"`
	AccountNumber     []string `json:"accountNumber,omitempty"`
}

type IntermediaryVASP struct {
	IntermediaryVASP Person `json:"intermediaryVASP"`
	Sequence         int    `json:"sequence"`
}

type TransferPath struct {
	TransferPath []IntermediaryVASP `json:"transferPath"`
}

// PayloadMetadata is mandatory in 2023 payloads since it carries the
// version discriminator.
type PayloadMetadata struct {
	TransliterationMethod []ivms101.TransliterationMethodCode `json:"transliterationMethod,omitempty"`
	PayloadVersion        ivms101.PayloadVersionCode          `json:"payloadVersion"`
}

type IVMS101 struct {
	Originator      Originator       `json:"originator"`
	Beneficiary     Beneficiary      `json:"beneficiary"`
	OriginatingVASP *Person          `json:"originatingVASP,omitempty"`
	BeneficiaryVASP *Person          `json:"beneficiaryVASP,omitempty"`
	TransferPath    *TransferPath    `json:"transferPath,omitempty"`
	PayloadMetadata *PayloadMetadata `json:"payloadMetadata,omitempty"`
}

func (r *IVMS101) DeclaredVersion() ivms101.PayloadVersionCode {
	if r == nil || r.PayloadMetadata == nil {
		return ""
	}
	return r.PayloadMetadata.PayloadVersion
}
