package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHTMLEscapesContent(t *testing.T) {
	html, err := BuildHTML("AI Optimized CV", "  Skills: <script>alert(1)</script> & Go  ")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>AI Optimized CV</title>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&amp; Go</pre>")
}
