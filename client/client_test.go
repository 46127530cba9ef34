package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/Financial-Times/go-logger"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2020"
	"github.com/Financial-Times/ivms101-transformer/ivms101/v2023"
	transactionidutils "github.com/Financial-Times/transactionid-utils-go"
	"github.com/stretchr/testify/suite"
	"gopkg.in/jarcoal/httpmock.v1"
)

const converted2023 = `{"originator":{"originatorPerson":[{"naturalPerson":{"name":[{"primaryIdentifier":"Smith","naturalPersonNameIdentifierType":"LEGL"}],"customerIdentification":"123456"}}]},"beneficiary":{"beneficiaryPerson":[]},"payloadMetadata":{"payloadVersion":"101.2023"}}`

type TransformerClientTestSuite struct {
	suite.Suite
	client *TransformerClient
}

func (suite *TransformerClientTestSuite) SetupTest() {
	httpmock.Reset()
	client, err := NewClient("http://localhost")
	suite.Nil(err)
	suite.client = client.(*TransformerClient)
}

func sampleRecord() *v2020.IVMS101 {
	return &v2020.IVMS101{
		Originator: v2020.Originator{
			OriginatorPersons: []v2020.Person{
				{
					NaturalPerson: &v2020.NaturalPerson{
						Name: []v2020.NaturalPersonNameID{
							{PrimaryIdentifier: "Smith", NameIdentifierType: ivms101.NaturalPersonNameTypeLegal},
						},
						CustomerNumber: "123456",
					},
				},
			},
		},
		Beneficiary: v2020.Beneficiary{BeneficiaryPersons: []v2020.Person{}},
	}
}

func (suite *TransformerClientTestSuite) TestConvert_Success() {
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/ivms101/convert",
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("101.2023", req.URL.Query().Get("version"))
			suite.Equal("tid_client_test", req.Header.Get("X-Request-Id"))
			body, err := io.ReadAll(req.Body)
			suite.Nil(err)
			suite.Contains(string(body), `"originatorPersons"`)
			return httpmock.NewStringResponse(200, converted2023), nil
		},
	)

	ctx := transactionidutils.TransactionAwareContext(context.Background(), "tid_client_test")
	record, err := suite.client.Convert(ctx, ivms101.PayloadVersion2023, sampleRecord())
	suite.Nil(err)
	suite.Require().IsType(&v2023.IVMS101{}, record)

	converted := record.(*v2023.IVMS101)
	suite.Equal(ivms101.PayloadVersion2023, converted.DeclaredVersion())
	suite.Equal("123456", converted.Originator.OriginatorPerson[0].NaturalPerson.CustomerIdentification)
}

func (suite *TransformerClientTestSuite) TestConvert_FailOnStatus() {
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/ivms101/convert",
		httpmock.NewStringResponder(400, `{"message":"empty IVMS101 payload"}`),
	)

	record, err := suite.client.Convert(context.Background(), ivms101.PayloadVersion2023, sampleRecord())
	suite.Nil(record)
	suite.True(errors.Is(err, ErrUnexpectedStatus))
	suite.Contains(err.Error(), "400")
}

func (suite *TransformerClientTestSuite) TestConvert_FailOnInvalidJSON() {
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/ivms101/convert",
		httpmock.NewStringResponder(200, `...`),
	)

	record, err := suite.client.Convert(context.Background(), ivms101.PayloadVersion2023, sampleRecord())
	suite.Nil(record)
	suite.NotNil(err)
}

func (suite *TransformerClientTestSuite) TestConvert_FailsOnClientError() {
	record, err := suite.client.Convert(context.Background(), ivms101.PayloadVersion2023, sampleRecord())
	suite.Nil(record)
	suite.NotNil(err)
}

func (suite *TransformerClientTestSuite) TestDetectVersion_Success() {
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/ivms101/version",
		httpmock.NewStringResponder(200, `{"payloadVersion":"101.2023"}`),
	)

	version, err := suite.client.DetectVersion(context.Background(), sampleRecord())
	suite.Nil(err)
	suite.Equal(ivms101.PayloadVersion2023, version)
}

func (suite *TransformerClientTestSuite) TestDetectVersion_FailOnUnknownVersion() {
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/ivms101/version",
		httpmock.NewStringResponder(200, `{"payloadVersion":"102"}`),
	)

	version, err := suite.client.DetectVersion(context.Background(), sampleRecord())
	suite.Empty(version)
	suite.True(errors.Is(err, ivms101.ErrUnknownVersion))
}

func (suite *TransformerClientTestSuite) TestDetectVersion_FailOnStatus() {
	httpmock.RegisterResponder(
		"POST",
		"http://localhost/ivms101/version",
		httpmock.NewStringResponder(503, `{}`),
	)

	version, err := suite.client.DetectVersion(context.Background(), sampleRecord())
	suite.Empty(version)
	suite.True(errors.Is(err, ErrUnexpectedStatus))
}

func (suite *TransformerClientTestSuite) TestCheckHealth_Success() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/__gtg",
		httpmock.NewStringResponder(200, `OK`),
	)

	status, err := suite.client.Healthcheck().Checker()
	suite.Nil(err)
	suite.Equal("", status)
}

func (suite *TransformerClientTestSuite) TestCheckHealth_FailsOnNon200() {
	httpmock.RegisterResponder(
		"GET",
		"http://localhost/__gtg",
		httpmock.NewStringResponder(503, `{}`),
	)

	status, err := suite.client.Healthcheck().Checker()
	suite.NotNil(err)
	suite.Contains(status, "bad status")
}

func (suite *TransformerClientTestSuite) TestCheckHealth_FailsOnClientErr() {
	status, err := suite.client.Healthcheck().Checker()
	suite.NotNil(err)
	suite.Contains(status, "failed to request")
}

func TestNewClient_InvalidAddress(t *testing.T) {
	_, err := NewClient("http://local host:%zz")
	if err == nil {
		t.Fatal("expected an error for an unparseable address")
	}
}

func TestTransformerClientTestSuite(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	logger.InitDefaultLogger("ivms101-transformer-client-test")

	suite.Run(t, new(TransformerClientTestSuite))
}
