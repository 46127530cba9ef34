// Package converter maps IVMS101 payloads between the 2020 and 2023 versions
// of the standard.
//
// Every conversion builds a fresh record: slices and pointers of the result
// never alias the input, so callers may mutate either side freely.
package converter

import (
	"slices"

	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2020"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2023"
	"github.com/samber/lo"
)

// ConvertTo2023 converts a 2020 payload into a 2023 payload stamped with
// payload version 101.2023.
func ConvertTo2023(data *v2020.IVMS101) *v2023.IVMS101 {
	if data == nil {
		return nil
	}
	converted := &v2023.IVMS101{
		Originator: v2023.Originator{
			OriginatorPerson: mapSlice(data.Originator.OriginatorPersons, personTo2023),
			AccountNumber:    slices.Clone(data.Originator.AccountNumber),
		},
		Beneficiary: v2023.Beneficiary{
			BeneficiaryPerson: mapSlice(data.Beneficiary.BeneficiaryPersons, personTo2023),
			AccountNumber:     slices.Clone(data.Beneficiary.AccountNumber),
		},
		OriginatingVASP: mapPtr(data.OriginatingVASP, personTo2023),
		BeneficiaryVASP: mapPtr(data.BeneficiaryVASP, personTo2023),
		TransferPath:    mapPtr(data.TransferPath, transferPathTo2023),
		PayloadMetadata: &v2023.PayloadMetadata{
			PayloadVersion: ivms101.PayloadVersion2023,
		},
	}
	if data.PayloadMetadata != nil {
		converted.PayloadMetadata.TransliterationMethod = slices.Clone(data.PayloadMetadata.TransliterationMethod)
	}
	return converted
}

// ConvertFrom2023 converts a 2023 payload back into a 2020 payload. The
// version discriminator is dropped, and so is the whole payload metadata
// when it carries no transliteration methods, empty list included.
func ConvertFrom2023(data *v2023.IVMS101) *v2020.IVMS101 {
	if data == nil {
		return nil
	}
	converted := &v2020.IVMS101{
		Originator: v2020.Originator{
			OriginatorPersons: mapSlice(data.Originator.OriginatorPerson, personFrom2023),
			AccountNumber:     slices.Clone(data.Originator.AccountNumber),
		},
		Beneficiary: v2020.Beneficiary{
			BeneficiaryPersons: mapSlice(data.Beneficiary.BeneficiaryPerson, personFrom2023),
			AccountNumber:      slices.Clone(data.Beneficiary.AccountNumber),
		},
		OriginatingVASP: mapPtr(data.OriginatingVASP, personFrom2023),
		BeneficiaryVASP: mapPtr(data.BeneficiaryVASP, personFrom2023),
		TransferPath:    mapPtr(data.TransferPath, transferPathFrom2023),
	}
	if data.PayloadMetadata != nil && len(data.PayloadMetadata.TransliterationMethod) > 0 {
		converted.PayloadMetadata = &v2020.PayloadMetadata{
			TransliterationMethod: slices.Clone(data.PayloadMetadata.TransliterationMethod),
		}
	}
	return converted
}

func transferPathTo2023(tp v2020.TransferPath) v2023.TransferPath {
	return v2023.TransferPath{
		TransferPath: mapSlice(tp.TransferPath, func(hop v2020.IntermediaryVASP) v2023.IntermediaryVASP {
			return v2023.IntermediaryVASP{
				IntermediaryVASP: personTo2023(hop.IntermediaryVASP),
				Sequence:         hop.Sequence,
			}
		}),
	}
}

func transferPathFrom2023(tp v2023.TransferPath) v2020.TransferPath {
	return v2020.TransferPath{
		TransferPath: mapSlice(tp.TransferPath, func(hop v2023.IntermediaryVASP) v2020.IntermediaryVASP {
			return v2020.IntermediaryVASP{
				IntermediaryVASP: personFrom2023(hop.IntermediaryVASP),
				Sequence:         hop.Sequence,
			}
		}),
	}
}

// A person with both branches, or neither, is converted as it is.
func personTo2023(p v2020.Person) v2023.Person {
	return v2023.Person{
		NaturalPerson: mapPtr(p.NaturalPerson, naturalPersonTo2023),
		LegalPerson:   mapPtr(p.LegalPerson, legalPersonTo2023),
	}
}

func personFrom2023(p v2023.Person) v2020.Person {
	return v2020.Person{
		NaturalPerson: mapPtr(p.NaturalPerson, naturalPersonFrom2023),
		LegalPerson:   mapPtr(p.LegalPerson, legalPersonFrom2023),
	}
}

func naturalPersonTo2023(np v2020.NaturalPerson) v2023.NaturalPerson {
	return v2023.NaturalPerson{
		Name: mapSlice(np.Name, func(n v2020.NaturalPersonNameID) v2023.NaturalPersonNameID {
			return v2023.NaturalPersonNameID{
				PrimaryIdentifier:               n.PrimaryIdentifier,
				SecondaryIdentifier:             n.SecondaryIdentifier,
				NaturalPersonNameIdentifierType: n.NameIdentifierType,
			}
		}),
		GeographicAddress:      slices.Clone(np.GeographicAddress),
		NationalIdentification: clonePtr(np.NationalIdentification),
		CustomerIdentification: np.CustomerNumber,
		DateAndPlaceOfBirth:    clonePtr(np.DateAndPlaceOfBirth),
		CountryOfResidence:     np.CountryOfResidence,
	}
}

func naturalPersonFrom2023(np v2023.NaturalPerson) v2020.NaturalPerson {
	return v2020.NaturalPerson{
		Name: mapSlice(np.Name, func(n v2023.NaturalPersonNameID) v2020.NaturalPersonNameID {
			return v2020.NaturalPersonNameID{
				PrimaryIdentifier:   n.PrimaryIdentifier,
				SecondaryIdentifier: n.SecondaryIdentifier,
				NameIdentifierType:  n.NaturalPersonNameIdentifierType,
			}
		}),
		GeographicAddress:      slices.Clone(np.GeographicAddress),
		NationalIdentification: clonePtr(np.NationalIdentification),
		CustomerNumber:         np.CustomerIdentification,
		DateAndPlaceOfBirth:    clonePtr(np.DateAndPlaceOfBirth),
		CountryOfResidence:     np.CountryOfResidence,
	}
}

func legalPersonTo2023(lp v2020.LegalPerson) v2023.LegalPerson {
	return v2023.LegalPerson{
		Name:                   slices.Clone(lp.Name),
		GeographicAddress:      slices.Clone(lp.GeographicAddress),
		CustomerIdentification: lp.CustomerNumber,
		NationalIdentification: clonePtr(lp.NationalIdentification),
		CountryOfRegistration:  lp.CountryOfRegistration,
	}
}

func legalPersonFrom2023(lp v2023.LegalPerson) v2020.LegalPerson {
	return v2020.LegalPerson{
		Name:                   slices.Clone(lp.Name),
		GeographicAddress:      slices.Clone(lp.GeographicAddress),
		CustomerNumber:         lp.CustomerIdentification,
		NationalIdentification: clonePtr(lp.NationalIdentification),
		CountryOfRegistration:  lp.CountryOfRegistration,
	}
}

// mapSlice keeps nil slices nil and empty slices empty.
func mapSlice[S, T any](in []S, convert func(S) T) []T {
	if in == nil {
		return nil
	}
	return lo.Map(in, func(item S, _ int) T {
		return convert(item)
	})
}

func mapPtr[S, T any](in *S, convert func(S) T) *T {
	if in == nil {
		return nil
	}
	out := convert(*in)
	return &out
}

// clonePtr is only safe for structs made of strings and codes.
func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}
