package plot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildLineChart tests the chart structure and rendering.
func TestBuildLineChart(t *testing.T) {
	t.Parallel()

	line := BuildLineChart("combine timing", "ns/op",
		[]string{"100", "200"},
		[]LineSeries{
			{Name: "mean", Values: []float64{1200, 2500}},
			{Name: "p95", Values: []float64{1500, 3100}},
		})

	var buf bytes.Buffer
	require.NoError(t, line.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "combine timing")
	assert.Contains(t, html, "mean")
	assert.Contains(t, html, "p95")
}

// TestWriteHTML tests rendering to a file.
func TestWriteHTML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.html")
	line := BuildLineChart("t", "y", []string{"1"}, []LineSeries{{Name: "s", Values: []float64{1}}})

	require.NoError(t, WriteHTML(path, line))
	assert.FileExists(t, path)
}
