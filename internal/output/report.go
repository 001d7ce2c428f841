package output

import (
	"fmt"
	"strings"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// Render formats the report with the named formatter (aliases accepted).
func Render(report *domain.DashboardReport, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return nil, fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	return data, nil
}

// GenerateReport writes the report to a timestamped file in dir and returns its path.
// The special format "all" writes the console and detailed CSV reports.
func GenerateReport(report *domain.DashboardReport, format, dir string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		name, err := WriteFormatted(f, report, dir)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}
	if NormalizeFormatName(format) != "all" {
		return nil, unsupported(format)
	}
	var written []string
	for _, f := range []Formatter{ConsoleFormatter{}, CSVMonthlyFormatter{}} {
		name, err := WriteFormatted(f, report, dir)
		if err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

// enrich error with available formatters and aliases
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
