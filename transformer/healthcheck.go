package transformer

import (
	"fmt"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	"github.com/Financial-Times/service-status-go/gtg"
)

const healthCheckTimeout = 10 * time.Second

// HealthService exposes the conversion checks on /__health and /__gtg.
type HealthService struct {
	appSystemCode string
	appName       string
	description   string
	Checks        []fthealth.Check
}

func NewHealthService(svc Service, appSystemCode string, appName string, description string) *HealthService {
	return &HealthService{
		appSystemCode: appSystemCode,
		appName:       appName,
		description:   description,
		Checks:        svc.Healthchecks(),
	}
}

func (hs *HealthService) HealthCheck() fthealth.TimedHealthCheck {
	return fthealth.TimedHealthCheck{
		HealthCheck: fthealth.HealthCheck{
			SystemCode:  hs.appSystemCode,
			Name:        hs.appName,
			Description: hs.description,
			Checks:      hs.Checks,
		},
		Timeout: healthCheckTimeout,
	}
}

// GTG reports the first failing check by its ID.
func (hs *HealthService) GTG() gtg.Status {
	for _, check := range hs.Checks {
		if _, err := check.Checker(); err != nil {
			return gtg.Status{
				GoodToGo: false,
				Message:  fmt.Sprintf("%s is not good to go, check %s failed: %v", hs.appSystemCode, check.ID, err),
			}
		}
	}
	return gtg.Status{GoodToGo: true}
}
