package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	logger "github.com/Financial-Times/go-logger"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/payload"
	transactionidutils "github.com/Financial-Times/transactionid-utils-go"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from ivms101-transformer")
)

type Client interface {
	Convert(ctx context.Context, target ivms101.PayloadVersionCode, record ivms101.Record) (ivms101.Record, error)
	DetectVersion(ctx context.Context, record ivms101.Record) (ivms101.PayloadVersionCode, error)
	Healthcheck() fthealth.Check
}

type TransformerClient struct {
	address    *url.URL
	httpClient *http.Client
}

func NewClient(address string) (Client, error) {
	url, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	return &TransformerClient{
		address:    url,
		httpClient: http.DefaultClient,
	}, nil
}

func (c *TransformerClient) Convert(ctx context.Context, target ivms101.PayloadVersionCode, record ivms101.Record) (ivms101.Record, error) {
	body, err := encode(record)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("version", target.String())
	respBody, status, err := c.makeRequest(ctx, "POST", "/ivms101/convert", query, body)
	if err != nil {
		logger.WithError(err).Error("Could not convert IVMS101 payload")
		return nil, err
	}
	if status != http.StatusOK {
		logger.WithField("status", status).Error("Could not convert IVMS101 payload, invalid status")
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	return payload.Decode(bytes.NewReader(respBody))
}

func (c *TransformerClient) DetectVersion(ctx context.Context, record ivms101.Record) (ivms101.PayloadVersionCode, error) {
	body, err := encode(record)
	if err != nil {
		return "", err
	}

	respBody, status, err := c.makeRequest(ctx, "POST", "/ivms101/version", nil, body)
	if err != nil {
		logger.WithError(err).Error("Could not detect IVMS101 payload version")
		return "", err
	}
	if status != http.StatusOK {
		logger.WithField("status", status).Error("Could not detect IVMS101 payload version, invalid status")
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	resp := struct {
		PayloadVersion string `json:"payloadVersion"`
	}{}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", err
	}
	return ivms101.ParseVersion(resp.PayloadVersion)
}

func (c *TransformerClient) Healthcheck() fthealth.Check {
	return fthealth.Check{
		Name:           "IVMS101 transformer is accessible",
		BusinessImpact: "Travel rule payloads cannot be converted between IVMS101 versions",
		ID:             "ivms101-transformer-check",
		Severity:       3,
		PanicGuide:     "https://dewey.ft.com/ivms101-transformer.html",
		TechnicalSummary: "The ivms101-transformer service is inaccessible. Check that the address is correct and " +
			"the service is up.",
		Timeout: 10 * time.Second,
		Checker: func() (string, error) {
			_, status, err := c.makeRequest(context.Background(), "GET", "/__gtg", nil, nil)
			if err != nil {
				errMsg := "failed to request gtg from ivms101-transformer"
				return errMsg, errors.New(errMsg)
			}
			if status != http.StatusOK {
				errMsg := "bad status from gtg for ivms101-transformer"
				return errMsg, errors.New(errMsg)
			}
			return "", nil
		},
	}
}

func (c *TransformerClient) makeRequest(ctx context.Context, method string, path string, query url.Values, body []byte) ([]byte, int, error) {
	finalURL := *c.address
	finalURL.Path = path
	finalURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, finalURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tid, err := transactionidutils.GetTransactionIDFromContext(ctx); err == nil {
		req.Header.Set(transactionidutils.TransactionIDHeader, tid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return respBody, resp.StatusCode, nil
}

func encode(record ivms101.Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := payload.Encode(buf, record); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
