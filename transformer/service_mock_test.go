package transformer

import (
	"context"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	"github.com/Financial-Times/ivms101-transformer/converter"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
)

type MockService struct {
	err          error
	block        bool
	healthchecks []fthealth.Check
}

func NewMockService(err error, healthchecks []fthealth.Check) *MockService {
	return &MockService{
		err:          err,
		healthchecks: healthchecks,
	}
}

func (s *MockService) Convert(ctx context.Context, target ivms101.PayloadVersionCode, record ivms101.Record) (ivms101.Record, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return converter.EnsureVersion(target, record), nil
}

func (s *MockService) Detect(record ivms101.Record) ivms101.PayloadVersionCode {
	return converter.DetectVersion(record)
}

func (s *MockService) Healthchecks() []fthealth.Check {
	if s.healthchecks != nil {
		return s.healthchecks
	}
	return []fthealth.Check{}
}
