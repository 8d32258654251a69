package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>Hello</p>"))
	assert.True(t, LooksLikeHTML("Line<br/>break"))
	assert.True(t, LooksLikeHTML(`<UL class="x"><LI>One</LI></UL>`))
	assert.False(t, LooksLikeHTML("Salary < 50k and > 30k"))
	assert.False(t, LooksLikeHTML("Plain text description"))
}

func TestHTMLToText(t *testing.T) {
	input := `<div><h2>About the role</h2><p>Lead our <strong>finance</strong> function.</p>` +
		`<ul><li>Board reporting</li><li>Cash flow</li></ul>` +
		`<script>track()</script><style>p{color:red}</style><p>Line one<br>Line two</p></div>`

	got, err := HTMLToText(input)
	require.NoError(t, err)

	assert.Contains(t, got, "About the role")
	assert.Contains(t, got, "Lead our finance function.")
	assert.Contains(t, got, "- Board reporting\n- Cash flow")
	assert.Contains(t, got, "Line one\nLine two")
	assert.NotContains(t, got, "track()")
	assert.NotContains(t, got, "color:red")
	assert.NotContains(t, got, "\n\n\n")
}

func TestDescriptionText(t *testing.T) {
	assert.Equal(t, "Plain text", DescriptionText("  Plain   text  "))
	assert.Equal(t, "Bold move", DescriptionText("<b>Bold</b> move"))
	assert.Empty(t, DescriptionText(""))
}
