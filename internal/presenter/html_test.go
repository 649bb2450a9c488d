package presenter

import (
	"bytes"
	"encoding/base64"
	stdhtml "html"
	"strings"
	"testing"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v View) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, NewPage(v)))
	return buf.String()
}

func TestRenderHTML_Alerts(t *testing.T) {
	v := BuildView("ca", domain.Result{Region: "CA", Rows: sampleRows()}, nil)
	html := render(t, v)

	assert.Contains(t, html, "Found 2 active alerts")
	assert.Contains(t, html, `id="summary"`)
	assert.Contains(t, html, "<summary>Full Alert Details</summary>")
	assert.Contains(t, html, `download="nws_alerts.csv"`)
	assert.Contains(t, html, `value="ca"`)
	assert.Contains(t, html, "<th>NWS Office</th>")
	// Event appears once in the summary and once in the detail table.
	assert.Equal(t, 2, strings.Count(html, "<td>Heat Advisory</td>")+strings.Count(html, `<td class="text">Heat Advisory</td>`))
	// Quotes in descriptions are escaped.
	assert.Contains(t, html, "&#34;whiteout&#34;")

	encoded := base64.StdEncoding.EncodeToString(v.CSV)
	assert.Contains(t, stdhtml.UnescapeString(html), "data:text/csv;charset=utf-8;base64,"+encoded)
}

func TestRenderHTML_Error(t *testing.T) {
	html := render(t, BuildView("", domain.Result{}, &domain.FetchError{StatusCode: 503}))

	assert.Contains(t, html, "Failed to fetch data: 503")
	assert.NotContains(t, html, "<table")
	assert.NotContains(t, html, "download=")
}

func TestRenderHTML_Empty(t *testing.T) {
	html := render(t, BuildView("", domain.Result{}, nil))

	assert.Contains(t, html, EmptyMessage)
	assert.NotContains(t, html, "<table")
	assert.NotContains(t, html, "download=")
}

func TestRenderHTML_EscapesInput(t *testing.T) {
	html := render(t, BuildView(`"><script>`, domain.Result{}, nil))
	assert.NotContains(t, html, "<script>")
}

func TestRenderText(t *testing.T) {
	v := BuildView("", domain.Result{Rows: sampleRows()}, nil)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, v, false))
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Found 2 active alerts", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Event"))
	assert.Contains(t, lines[2], "Winter Storm Warning")
	assert.NotContains(t, out, "Instruction")

	buf.Reset()
	require.NoError(t, RenderText(&buf, v, true))
	assert.Contains(t, buf.String(), "NWS Office:")
	assert.Contains(t, buf.String(), "[2]")
}

func TestRenderText_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, BuildView("", domain.Result{}, &domain.FetchError{StatusCode: 500}), true))
	assert.Equal(t, "Failed to fetch data: 500\n", buf.String())
}
