// Package ivms101 holds the data shared by both versions of the interVASP
// Messaging Standard (IVMS101) payload: the closed code sets, the payload
// version discriminator and the Record union implemented by the v2020 and
// v2023 schema packages.
package ivms101

// NaturalPersonNameTypeCode describes the nature of a natural person's name.
type NaturalPersonNameTypeCode string

const (
	NaturalPersonNameTypeAlias       NaturalPersonNameTypeCode = "ALIA"
	NaturalPersonNameTypeBirth       NaturalPersonNameTypeCode = "BIRT"
	NaturalPersonNameTypeMaiden      NaturalPersonNameTypeCode = "MAID"
	NaturalPersonNameTypeLegal       NaturalPersonNameTypeCode = "LEGL"
	NaturalPersonNameTypeUnspecified NaturalPersonNameTypeCode = "MISC"
)

// LegalPersonNameTypeCode describes the nature of a legal person's name.
type LegalPersonNameTypeCode string

const (
	LegalPersonNameTypeLegal   LegalPersonNameTypeCode = "LEGL"
	LegalPersonNameTypeShort   LegalPersonNameTypeCode = "SHRT"
	LegalPersonNameTypeTrading LegalPersonNameTypeCode = "TRAD"
)

// AddressTypeCode identifies the nature of an address.
type AddressTypeCode string

const (
	AddressTypeResidential AddressTypeCode = "HOME"
	AddressTypeBusiness    AddressTypeCode = "BIZZ"
	AddressTypeGeographic  AddressTypeCode = "GEOG"
)

// NationalIdentifierTypeCode identifies the kind of national identification.
type NationalIdentifierTypeCode string

const (
	NationalIdentifierAlienRegistration     NationalIdentifierTypeCode = "ARNU"
	NationalIdentifierPassport              NationalIdentifierTypeCode = "CCPT"
	NationalIdentifierRegistrationAuthority NationalIdentifierTypeCode = "RAID"
	NationalIdentifierDriverLicence         NationalIdentifierTypeCode = "DRLC"
	NationalIdentifierForeignInvestment     NationalIdentifierTypeCode = "FIIN"
	NationalIdentifierTax                   NationalIdentifierTypeCode = "TXID"
	NationalIdentifierSocialSecurity        NationalIdentifierTypeCode = "SOCS"
	NationalIdentifierIdentityCard          NationalIdentifierTypeCode = "IDCD"
	NationalIdentifierLEI                   NationalIdentifierTypeCode = "LEIX"
	NationalIdentifierUnspecified           NationalIdentifierTypeCode = "MISC"
)

// TransliterationMethodCode identifies the method used to map a national
// writing system to Latin script.
type TransliterationMethodCode string

const (
	TransliterationArabic     TransliterationMethodCode = "arab"
	TransliterationNastaliq   TransliterationMethodCode = "aran"
	TransliterationArmenian   TransliterationMethodCode = "armn"
	TransliterationCyrillic   TransliterationMethodCode = "cyrl"
	TransliterationDevanagari TransliterationMethodCode = "deva"
	TransliterationGeorgian   TransliterationMethodCode = "geor"
	TransliterationGreek      TransliterationMethodCode = "grek"
	TransliterationHan        TransliterationMethodCode = "hani"
	TransliterationHebrew     TransliterationMethodCode = "hebr"
	TransliterationKana       TransliterationMethodCode = "kana"
	TransliterationKorean     TransliterationMethodCode = "kore"
	TransliterationThai       TransliterationMethodCode = "thai"
	TransliterationOther      TransliterationMethodCode = "othr"
)

// CountryCode is an ISO 3166-1 alpha-2 country code. Values are carried
// verbatim and never checked.
type CountryCode string
