package transformer

import (
	"context"
	"errors"
	"fmt"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	logger "github.com/Financial-Times/go-logger"
	"github.com/Financial-Times/ivms101-transformer/converter"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2020"
	transactionidutils "github.com/Financial-Times/transactionid-utils-go"
	"github.com/google/go-cmp/cmp"
	"github.com/rcrowley/go-metrics"
)

const panicGuide = "https://dewey.ft.com/ivms101-transformer.html"

var ErrNoRecord = errors.New("no IVMS101 record provided")

type Service interface {
	Convert(ctx context.Context, target ivms101.PayloadVersionCode, record ivms101.Record) (ivms101.Record, error)
	Detect(record ivms101.Record) ivms101.PayloadVersionCode
	Healthchecks() []fthealth.Check
}

type ConversionService struct {
	registry metrics.Registry
}

func NewService(registry metrics.Registry) Service {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return &ConversionService{registry: registry}
}

func (s *ConversionService) Convert(ctx context.Context, target ivms101.PayloadVersionCode, record ivms101.Record) (ivms101.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNoRecord
	}
	tid, _ := transactionidutils.GetTransactionIDFromContext(ctx)

	source := converter.DetectVersion(record)
	var converted ivms101.Record
	metrics.GetOrRegisterTimer(conversionMetric(source, target)+".timer", s.registry).Time(func() {
		converted = converter.EnsureVersion(target, record)
	})
	metrics.GetOrRegisterCounter(conversionMetric(source, target), s.registry).Inc(1)

	logger.WithTransactionID(tid).
		WithField("sourceVersion", source.String()).
		WithField("targetVersion", target.String()).
		Debug("Converted IVMS101 payload")
	return converted, nil
}

func (s *ConversionService) Detect(record ivms101.Record) ivms101.PayloadVersionCode {
	return converter.DetectVersion(record)
}

func (s *ConversionService) Healthchecks() []fthealth.Check {
	return []fthealth.Check{
		s.ConverterRoundTripCheck(),
	}
}

// ConverterRoundTripCheck converts a canned 2020 payload to 2023 and back and
// expects to get the very same payload.
func (s *ConversionService) ConverterRoundTripCheck() fthealth.Check {
	return fthealth.Check{
		ID:               "ivms101-converter-round-trip",
		BusinessImpact:   "Travel rule payloads cannot be exchanged with counterparties on a different IVMS101 version",
		Name:             "IVMS101 converter round trip",
		PanicGuide:       panicGuide,
		Severity:         2,
		TechnicalSummary: "Converting a known IVMS101 2020 payload to 2023 and back does not give the original payload. The deployed build is faulty, roll back to the previous release.",
		Checker: func() (string, error) {
			return checkRoundTrip(roundTripSample())
		},
	}
}

func checkRoundTrip(sample *v2020.IVMS101) (string, error) {
	converted := converter.ConvertTo2023(sample)
	if v := converter.DetectVersion(converted); v != ivms101.PayloadVersion2023 {
		return "converted payload has the wrong version", fmt.Errorf("converted payload declares version %q", v)
	}
	if diff := cmp.Diff(sample, converter.ConvertFrom2023(converted)); diff != "" {
		return "round trip changed the payload", fmt.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	return "", nil
}

func conversionMetric(source, target ivms101.PayloadVersionCode) string {
	if source == target {
		return "ivms101.conversions.unchanged." + target.String()
	}
	return "ivms101.conversions." + source.String() + "_to_" + target.String()
}

func roundTripSample() *v2020.IVMS101 {
	return &v2020.IVMS101{
		Originator: v2020.Originator{
			OriginatorPersons: []v2020.Person{
				{
					NaturalPerson: &v2020.NaturalPerson{
						Name: []v2020.NaturalPersonNameID{
							{PrimaryIdentifier: "Smith", SecondaryIdentifier: "John", NameIdentifierType: ivms101.NaturalPersonNameTypeLegal},
						},
						GeographicAddress: []v2020.Address{
							{AddressType: ivms101.AddressTypeResidential, TownName: "London", Country: "GB"},
						},
						CustomerNumber: "123456",
						DateAndPlaceOfBirth: &v2020.DateAndPlaceOfBirth{
							DateOfBirth:  "1970-01-01",
							PlaceOfBirth: "London",
						},
					},
				},
			},
			AccountNumber: []string{"ACC001"},
		},
		Beneficiary: v2020.Beneficiary{
			BeneficiaryPersons: []v2020.Person{
				{
					LegalPerson: &v2020.LegalPerson{
						Name: []v2020.LegalPersonNameID{
							{LegalPersonName: "Acme Corp", LegalPersonNameIdentifierType: ivms101.LegalPersonNameTypeLegal},
						},
						CustomerNumber: "789012",
						NationalIdentification: &v2020.NationalIdentification{
							NationalIdentifier:     "5493001KJTIIGC8Y1R12",
							NationalIdentifierType: ivms101.NationalIdentifierLEI,
						},
					},
				},
			},
		},
		TransferPath: &v2020.TransferPath{
			TransferPath: []v2020.IntermediaryVASP{
				{
					IntermediaryVASP: v2020.Person{
						LegalPerson: &v2020.LegalPerson{
							Name: []v2020.LegalPersonNameID{
								{LegalPersonName: "Intermediary VASP", LegalPersonNameIdentifierType: ivms101.LegalPersonNameTypeLegal},
							},
						},
					},
					Sequence: 1,
				},
			},
		},
		PayloadMetadata: &v2020.PayloadMetadata{
			TransliterationMethod: []ivms101.TransliterationMethodCode{ivms101.TransliterationOther},
		},
	}
}
