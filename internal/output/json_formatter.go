package output

import (
	"encoding/json"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// JSONFormatter serializes the dashboard report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.DashboardReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
