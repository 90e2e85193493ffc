package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "headings",
			input:    "<h1>Title</h1><h2>Sub</h2><h6>Tiny</h6>",
			expected: "# Title\n\n## Sub\n\n###### Tiny",
		},
		{
			name:     "paragraphs",
			input:    "<p>One</p><p>Two</p>",
			expected: "One\n\nTwo",
		},
		{
			name: "inline formatting",
			input: `<p>Hello <strong>bold</strong> and <em>it</em> with <code>x</code> ` +
				`and <a href="https://example.com">link</a></p>`,
			expected: "Hello **bold** and *it* with `x` and [link](https://example.com)",
		},
		{
			name:     "emphasis keeps outer whitespace",
			input:    "<p>a<strong> b </strong>c</p>",
			expected: "a **b** c",
		},
		{
			name:     "source whitespace collapsed",
			input:    "<p>Bold\n    and   more</p>",
			expected: "Bold and more",
		},
		{
			name:     "line breaks",
			input:    "<p>a<br>b</p>",
			expected: "a  \nb",
		},
		{
			name:     "flattened bullet lines form one list",
			input:    "<div>• One</div><div>• Two</div>",
			expected: "- One\n- Two",
		},
		{
			name:     "flattened numbered lines form one list",
			input:    "<div>1. First</div><div>2. Second</div>",
			expected: "1. First\n2. Second",
		},
		{
			name:     "different list kinds separated",
			input:    "<div>• One</div><div>1. First</div>",
			expected: "- One\n\n1. First",
		},
		{
			name:     "raw lists drop nested lists and number by position",
			input:    "<ul><li>A<ul><li>A1</li></ul></li><li>B</li></ul><ol><li></li><li>X</li></ol>",
			expected: "- A\n- B\n\n2. X",
		},
		{
			name:     "block quote",
			input:    "<blockquote><p>Quote</p><p>More</p></blockquote>",
			expected: "> Quote\n>\n> More",
		},
		{
			name:     "preformatted",
			input:    "<pre>line1\nline2</pre>",
			expected: "```\nline1\nline2\n```",
		},
		{
			name:     "rule",
			input:    "<p>a</p><hr><p>b</p>",
			expected: "a\n\n---\n\nb",
		},
		{
			name:     "nested containers",
			input:    `<div class="content"><p>x</p><div><p>y</p></div></div>`,
			expected: "x\n\ny",
		},
		{
			name:     "loose text",
			input:    "Just text",
			expected: "Just text",
		},
		{
			name:     "scripts dropped",
			input:    "<p>a</p><script>alert(1)</script>",
			expected: "a",
		},
		{
			name:     "empty placeholder",
			input:    "<div></div>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
