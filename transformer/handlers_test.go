package transformer

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	"github.com/Financial-Times/go-logger"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	payload2020 = `{"originator":{"originatorPersons":[{"naturalPerson":{"name":[{"primaryIdentifier":"Smith","secondaryIdentifier":"John","nameIdentifierType":"LEGL"}],"customerNumber":"123456"}}],"accountNumber":["ACC001"]},"beneficiary":{"beneficiaryPersons":[{"legalPerson":{"name":[{"legalPersonName":"Acme Corp","legalPersonNameIdentifierType":"LEGL"}],"customerNumber":"789012"}}]},"payloadMetadata":{"transliterationMethod":["othr"]}}`
	payload2023 = `{"originator":{"originatorPerson":[{"naturalPerson":{"name":[{"primaryIdentifier":"Smith","secondaryIdentifier":"John","naturalPersonNameIdentifierType":"LEGL"}],"customerIdentification":"123456"}}],"accountNumber":["ACC001"]},"beneficiary":{"beneficiaryPerson":[{"legalPerson":{"name":[{"legalPersonName":"Acme Corp","legalPersonNameIdentifierType":"LEGL"}],"customerIdentification":"789012"}}]},"payloadMetadata":{"transliterationMethod":["othr"],"payloadVersion":"101.2023"}}`
)

func init() {
	logger.InitLogger("test-ivms101-transformer", "debug")
}

func TestHandlers(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		url          string
		requestBody  string
		resultCode   int
		resultBody   string
		jsonBody     bool
		err          error
		healthchecks []fthealth.Check
	}{
		{
			"Convert - 2020 to default version",
			"POST",
			"/ivms101/convert",
			payload2020,
			200,
			payload2023,
			true,
			nil,
			nil,
		},
		{
			"Convert - 2023 to 2020",
			"POST",
			"/ivms101/convert?version=2020",
			payload2023,
			200,
			payload2020,
			true,
			nil,
			nil,
		},
		{
			"Convert - Already in target version",
			"POST",
			"/ivms101/convert?version=101.2023",
			payload2023,
			200,
			payload2023,
			true,
			nil,
			nil,
		},
		{
			"Convert - Unknown version",
			"POST",
			"/ivms101/convert?version=1999",
			payload2020,
			400,
			"{\"message\":\"unknown IVMS101 payload version: \\\"1999\\\"\"}\n",
			false,
			nil,
			nil,
		},
		{
			"Convert - Empty payload",
			"POST",
			"/ivms101/convert",
			"",
			400,
			"{\"message\":\"empty IVMS101 payload\"}\n",
			false,
			nil,
			nil,
		},
		{
			"Convert - Malformed payload",
			"POST",
			"/ivms101/convert",
			"{\"originator\":",
			400,
			"IGNORE",
			false,
			nil,
			nil,
		},
		{
			"Convert - Service failure",
			"POST",
			"/ivms101/convert",
			payload2020,
			500,
			"{\"message\":\"Could not convert the payload.\"}\n",
			false,
			errors.New("Could not convert the payload."),
			nil,
		},
		{
			"Convert - Wrong method",
			"GET",
			"/ivms101/convert",
			"",
			405,
			"IGNORE",
			false,
			nil,
			nil,
		},
		{
			"Version - 2020",
			"POST",
			"/ivms101/version",
			payload2020,
			200,
			"{\"payloadVersion\":\"101\"}\n",
			false,
			nil,
			nil,
		},
		{
			"Version - 2023",
			"POST",
			"/ivms101/version",
			payload2023,
			200,
			"{\"payloadVersion\":\"101.2023\"}\n",
			false,
			nil,
			nil,
		},
		{
			"Version - Empty payload",
			"POST",
			"/ivms101/version",
			"",
			400,
			"{\"message\":\"empty IVMS101 payload\"}\n",
			false,
			nil,
			nil,
		},
		{
			"GTG - Success",
			"GET",
			"/__gtg",
			"",
			200,
			"OK",
			false,
			nil,
			nil,
		},
		{
			"GTG - Failure",
			"GET",
			"/__gtg",
			"",
			503,
			"system-code is not good to go, check failing-check failed: GTG fail error",
			false,
			nil,
			[]fthealth.Check{
				{
					ID:      "failing-check",
					Checker: func() (string, error) {
						return "", errors.New("GTG fail error")
					},
				},
			},
		},
	}

	for _, d := range testCases {
		t.Run(d.name, func(t *testing.T) {
			mockService := NewMockService(d.err, d.healthchecks)
			handler := NewHandler(mockService, time.Second, ivms101.PayloadVersion2023)
			m := handler.RegisterHandlers(NewHealthService(mockService, "system-code", "app-name", "description"), true)

			req, _ := http.NewRequest(d.method, d.url, bytes.NewBufferString(d.requestBody))
			rr := httptest.NewRecorder()
			m.ServeHTTP(rr, req)

			b, err := io.ReadAll(rr.Body)
			assert.NoError(t, err)
			body := string(b)
			assert.Equal(t, d.resultCode, rr.Code, d.name)
			switch {
			case d.resultBody == "IGNORE":
			case d.jsonBody:
				assert.JSONEq(t, d.resultBody, body, d.name)
			default:
				assert.Equal(t, d.resultBody, body, d.name)
			}
		})
	}
}

func TestConvertHandler_TransactionID(t *testing.T) {
	handler := NewHandler(NewMockService(nil, nil), time.Second, ivms101.PayloadVersion2023)
	m := handler.RegisterHandlers(NewHealthService(NewMockService(nil, nil), "system-code", "app-name", "description"), false)

	req, _ := http.NewRequest("POST", "/ivms101/convert", bytes.NewBufferString(payload2020))
	req.Header.Set("X-Request-Id", "tid_test123")
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "tid_test123", rr.Header().Get("X-Request-Id"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestConvertHandler_Timeout(t *testing.T) {
	mockService := NewMockService(nil, nil)
	mockService.block = true
	handler := NewHandler(mockService, 10*time.Millisecond, ivms101.PayloadVersion2023)

	req, _ := http.NewRequest("POST", "/ivms101/convert", bytes.NewBufferString(payload2020))
	rr := httptest.NewRecorder()
	handler.ConvertHandler(rr, req)

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assert.Equal(t, "{\"message\":\"context deadline exceeded\"}\n", rr.Body.String())
}

func TestConvertHandler_RealService(t *testing.T) {
	handler := NewHandler(NewService(nil), time.Second, ivms101.PayloadVersion2023)

	req, _ := http.NewRequest("POST", "/ivms101/convert?version=2023", bytes.NewBufferString(payload2020))
	rr := httptest.NewRecorder()
	handler.ConvertHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, payload2023, rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	svc := NewService(nil)
	handler := NewHandler(svc, time.Second, ivms101.PayloadVersion2023)
	m := handler.RegisterHandlers(NewHealthService(svc, "system-code", "app-name", "description"), false)

	req, _ := http.NewRequest("GET", "/__health", nil)
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "IVMS101 converter round trip")
}
