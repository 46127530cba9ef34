// Package v2020 describes the original (2020) IVMS101 payload.
package v2020

import "github.com/Financial-Times/ivms101-transformer/ivms101"

// NaturalPersonNameID is one name of a natural person.
type NaturalPersonNameID struct {
	// Family, maiden or married name.
	PrimaryIdentifier string `json:"primaryIdentifier"`
	// Forenames, given names or initials.
	SecondaryIdentifier string                            `json:"secondaryIdentifier,omitempty"`
	NameIdentifierType  ivms101.NaturalPersonNameTypeCode `json:"nameIdentifierType"`
}

type LegalPersonNameID struct {
	LegalPersonName               string                          `json:"legalPersonName"`
	LegalPersonNameIdentifierType ivms101.LegalPersonNameTypeCode `json:"legalPersonNameIdentifierType"`
}

type Address struct {
	AddressType        ivms101.AddressTypeCode `json:"addressType"`
	StreetName         string                  `json:"streetName,omitempty"`
	BuildingNumber     string                  `json:"buildingNumber,omitempty"`
	BuildingName       string                  `json:"buildingName,omitempty"`
	Postcode           string                  `json:"postcode,omitempty"`
	TownName           string                  `json:"townName"`
	CountrySubDivision string                  `json:"countrySubDivision,omitempty"`
	Country            ivms101.CountryCode     `json:"country"`
}

// NationalIdentification is an identifier issued by a government or
// registration authority.
type NationalIdentification struct {
	NationalIdentifier     string                             `json:"nationalIdentifier"`
	NationalIdentifierType ivms101.NationalIdentifierTypeCode `json:"nationalIdentifierType"`
	CountryOfIssue         ivms101.CountryCode                `json:"countryOfIssue,omitempty"`
	RegistrationAuthority  string                             `json:"registrationAuthority,omitempty"`
}

type DateAndPlaceOfBirth struct {
	DateOfBirth  string `json:"dateOfBirth"`
	PlaceOfBirth string `json:"placeOfBirth"`
}

type NaturalPerson struct {
	Name                   []NaturalPersonNameID   `json:"name"`
	GeographicAddress      []Address               `json:"geographicAddress,omitempty"`
	NationalIdentification *NationalIdentification `json:"nationalIdentification,omitempty"`
	// Identifies the person to the institution holding the account.
	CustomerNumber      string               `json:"customerNumber,omitempty"`
	DateAndPlaceOfBirth *DateAndPlaceOfBirth `json:"dateAndPlaceOfBirth,omitempty"`
	CountryOfResidence  ivms101.CountryCode  `json:"countryOfResidence,omitempty"`
}

type LegalPerson struct {
	Name                   []LegalPersonNameID     `json:"name"`
	GeographicAddress      []Address               `json:"geographicAddress,omitempty"`
	CustomerNumber         string                  `json:"customerNumber,omitempty"`
	NationalIdentification *NationalIdentification `json:"nationalIdentification,omitempty"`
	CountryOfRegistration  ivms101.CountryCode     `json:"countryOfRegistration,omitempty"`
}

// Person holds a natural person or a legal person. Exactly one of the two is
// expected but neither is enforced.
type Person struct {
	NaturalPerson *NaturalPerson `json:"naturalPerson,omitempty"`
	LegalPerson   *LegalPerson   `json:"legalPerson,omitempty"`
}

type Originator struct {
	// Account holders who allow the transfer.
	OriginatorPersons []Person `json:"originatorPersons"`
	AccountNumber     []string `json:"accountNumber,omitempty"`
}

type Beneficiary struct {
	// Persons receiving the transfer.
	BeneficiaryPersons []Person `json:"beneficiaryPersons"`
	AccountNumber      []string `json:"accountNumber,omitempty"`
}

// IntermediaryVASP is one hop of a transfer path.
type IntermediaryVASP struct {
	IntermediaryVASP Person `json:"intermediaryVASP"`
	Sequence         int    `json:"sequence"`
}

type TransferPath struct {
	TransferPath []IntermediaryVASP `json:"transferPath"`
}

type PayloadMetadata struct {
	TransliterationMethod []ivms101.TransliterationMethodCode `json:"transliterationMethod,omitempty"`
}

// IVMS101 is a complete 2020 payload.
type IVMS101 struct {
	Originator      Originator       `json:"originator"`
	Beneficiary     Beneficiary      `json:"beneficiary"`
	OriginatingVASP *Person          `json:"originatingVASP,omitempty"`
	BeneficiaryVASP *Person          `json:"beneficiaryVASP,omitempty"`
	TransferPath    *TransferPath    `json:"transferPath,omitempty"`
	PayloadMetadata *PayloadMetadata `json:"payloadMetadata,omitempty"`
}

// DeclaredVersion always returns an empty code: 2020 payloads carry no
// version discriminator.
func (r *IVMS101) DeclaredVersion() ivms101.PayloadVersionCode {
	return ""
}
