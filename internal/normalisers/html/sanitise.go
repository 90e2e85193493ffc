package html

import (
	"html"
	"regexp"
	"strings"
)

// EmptyPlaceholder replaces content that sanitises to nothing, so a
// destination never receives an empty body.
const EmptyPlaceholder = "<div></div>"

// editorOnlyAttributes have no meaning outside the editor.
var editorOnlyAttributes = []string{
	` data-type="taskItem"`,
	` data-type="taskList"`,
	` data-checked="true"`,
	` data-checked="false"`,
	` data-text-style=""`,
}

// Pre-compiled regular expressions for sanitisation.
var (
	labelTag       = regexp.MustCompile(`(?is)<label\b[^>]*?>.*?</label>`)
	checkboxInput  = regexp.MustCompile(`(?is)<input[^>]*type="checkbox"[^>]*/?>`)
	contentDivOpen = regexp.MustCompile(`(?is)<div[^>]*class="content"[^>]*>`)
	divTag         = regexp.MustCompile(`(?i)</?div\b`)
	leadingHeading = regexp.MustCompile(`(?is)^\s*<h1\b[^>]*>(.*?)</h1>`)
	allTags        = regexp.MustCompile(`<[^>]+>`)
)

// Sanitise converts editor HTML into display-safe HTML.
//
// Editor-only attributes, labels and checkboxes are removed, content
// wrappers left holding an orphaned nested list are collapsed to their
// leading text, and every list is flattened into one line per item.
func Sanitise(content string) string {
	sanitised := content

	for _, attr := range editorOnlyAttributes {
		sanitised = strings.ReplaceAll(sanitised, attr, "")
	}

	sanitised = labelTag.ReplaceAllString(sanitised, "")
	sanitised = checkboxInput.ReplaceAllString(sanitised, "")
	sanitised = collapseContentWrappers(sanitised)
	sanitised = flattenLists(sanitised)

	return strings.TrimSpace(sanitised)
}

// PrepareForDestination sanitises content for a destination that supplies
// its own title field. A leading <h1> matching title is dropped, and an
// empty result becomes EmptyPlaceholder.
func PrepareForDestination(content, title string) string {
	prepared := strings.TrimSpace(StripLeadingHeading(Sanitise(content), title))
	if prepared == "" {
		return EmptyPlaceholder
	}
	return prepared
}

// StripLeadingHeading removes a leading <h1> whose decoded text equals
// title, ignoring case and surrounding whitespace. Any other content is
// returned unchanged.
func StripLeadingHeading(content, title string) string {
	loc := leadingHeading.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}

	heading := strings.TrimSpace(html.UnescapeString(allTags.ReplaceAllString(content[loc[2]:loc[3]], "")))
	if !strings.EqualFold(heading, strings.TrimSpace(title)) {
		return content
	}

	return content[loc[1]:]
}

// collapseContentWrappers rewrites
//
//	<div class="content">Text<ul>...</ul></div>
//
// as <div class="content">Text</div>. The editor leaves this shape behind
// for nested task items once their checkbox and label are gone.
func collapseContentWrappers(s string) string {
	var b strings.Builder
	pos := 0

	for {
		loc := contentDivOpen.FindStringIndex(s[pos:])
		if loc == nil {
			b.WriteString(s[pos:])
			return b.String()
		}

		openStart, openEnd := pos+loc[0], pos+loc[1]
		b.WriteString(s[pos:openStart])

		end, lead, ok := wrappedNestedList(s, openEnd)
		if !ok {
			b.WriteString(s[openStart:openEnd])
			pos = openEnd
			continue
		}

		b.WriteString(`<div class="content">`)
		b.WriteString(strings.TrimSpace(lead))
		b.WriteString(`</div>`)
		pos = end
	}
}

// wrappedNestedList checks whether the container body starting at from is
// leading text, then a list, then the container's closing tag. It returns
// the index just past </div> and the leading text.
func wrappedNestedList(s string, from int) (int, string, bool) {
	rest := s[from:]

	loc := listOpenTag.FindStringIndex(rest)
	if loc == nil {
		return 0, "", false
	}

	lead := rest[:loc[0]]
	if divTag.MatchString(lead) {
		return 0, "", false
	}

	_, closeEnd, ok := matchingListClose(s, from+loc[1])
	if !ok {
		return 0, "", false
	}

	after := strings.TrimLeft(s[closeEnd:], " \t\r\n")
	const closeDiv = "</div>"
	if len(after) < len(closeDiv) || !strings.EqualFold(after[:len(closeDiv)], closeDiv) {
		return 0, "", false
	}

	return len(s) - len(after) + len(closeDiv), lead, true
}
