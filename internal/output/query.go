package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// Query evaluates a JSONPath expression against the JSON form of the report,
// e.g. `$.scenarios[0].annual[10].equity` or
// `$.scenarios[?(@.scenario.name == "optimistic")].annual[10].homeValue`.
// String literals in filters must be double-quoted.
func Query(ctx context.Context, report *domain.DashboardReport, path string) (interface{}, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	eval, err := jsonpath.New(path)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	v, err := eval(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	// a single match is returned bare
	if list, ok := v.([]interface{}); ok && len(list) == 1 {
		return list[0], nil
	}
	return v, nil
}

// FormatQueryResult renders a query result for printing: scalars as-is,
// everything else as indented JSON.
func FormatQueryResult(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64, bool, nil:
		b, _ := json.Marshal(x)
		return string(b), nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
