package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propeq/equity-dashboard/internal/output"
	"github.com/propeq/equity-dashboard/internal/service"
)

func TestOutputGeneration(t *testing.T) {
	svc, _ := loadService(t)
	report, err := svc.Dashboard(context.Background(), service.DashboardOptions{AsOf: asOf})
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			written, err := output.GenerateReport(report, name, dir)
			require.NoError(t, err)
			require.Len(t, written, 1)
			assert.Equal(t, "."+output.FileExtension(name), filepath.Ext(written[0]))

			data, err := os.ReadFile(written[0])
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestFormattersAgreeOnFigures(t *testing.T) {
	svc, _ := loadService(t)
	report, err := svc.Dashboard(context.Background(), service.DashboardOptions{AsOf: asOf})
	require.NoError(t, err)

	for _, format := range []string{"console", "markdown", "html"} {
		data, err := output.Render(report, format)
		require.NoError(t, err, format)
		content := string(data)
		assert.True(t, strings.Contains(content, "Cedar Court Fourplex"), format)
		assert.True(t, strings.Contains(content, "$258,570"), format)
		assert.True(t, strings.Contains(content, "$27,598"), format)
	}

	v, err := output.Query(context.Background(), report, "$.summary.monthCashFlow")
	require.NoError(t, err)
	assert.Equal(t, 762.0, v)
}
