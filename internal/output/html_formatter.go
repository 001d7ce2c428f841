package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"time"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// HTMLFormatter produces a standalone HTML dashboard report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"cents": FormatCents,
	"share": FormatShare,
	"date":  func(t time.Time) string { return t.Format("2006-01-02") },
	"last": func(points []domain.MonthlyPoint) domain.MonthlyPoint {
		if len(points) == 0 {
			return domain.MonthlyPoint{}
		}
		return points[len(points)-1]
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the cumulative cash-flow overlay the page plots per scenario.
type chartSeries struct {
	Name   string    `json:"name"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func (h HTMLFormatter) Format(report *domain.DashboardReport) ([]byte, error) {
	var buf bytes.Buffer

	series := make([]chartSeries, 0, len(report.Scenarios))
	for _, sc := range report.Scenarios {
		cs := chartSeries{Name: sc.Scenario.Name}
		for _, p := range sc.Monthly {
			cs.Labels = append(cs.Labels, p.Label)
			cs.Values = append(cs.Values, p.Cumulative)
		}
		series = append(series, cs)
	}

	data := struct {
		*domain.DashboardReport
		OwnerName   string
		Assumptions []string
		Chart       []chartSeries
	}{report, ownerName(report), GenerateAssumptions(report.Property), series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
