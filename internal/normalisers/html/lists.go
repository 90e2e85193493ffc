package html

import (
	"regexp"
	"strconv"
	"strings"
)

type listKind int

const (
	unorderedList listKind = iota
	orderedList
)

// BulletMarker prefixes each flattened unordered list item.
const BulletMarker = "•"

var (
	listOpenTag     = regexp.MustCompile(`(?i)<(ul|ol)\b[^>]*>`)
	listTag         = regexp.MustCompile(`(?i)<(/?)(?:ul|ol)\b[^>]*>`)
	itemTag         = regexp.MustCompile(`(?i)<(/?)(li|ul|ol)\b[^>]*>`)
	nestedListStart = regexp.MustCompile(`(?i)<(?:ul|ol)\b`)
)

// flattenLists replaces every top-level <ul>/<ol> with one <div> per item.
// An opening tag without a matching close is left untouched.
func flattenLists(s string) string {
	var b strings.Builder
	pos := 0

	for {
		loc := listOpenTag.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			b.WriteString(s[pos:])
			return b.String()
		}

		openStart, openEnd := pos+loc[0], pos+loc[1]
		kind := unorderedList
		if strings.EqualFold(s[pos+loc[2]:pos+loc[3]], "ol") {
			kind = orderedList
		}

		b.WriteString(s[pos:openStart])

		closeStart, closeEnd, ok := matchingListClose(s, openEnd)
		if !ok {
			b.WriteString(s[openStart:openEnd])
			pos = openEnd
			continue
		}

		b.WriteString(renderList(s[openEnd:closeStart], kind))
		pos = closeEnd
	}
}

// matchingListClose finds the closing list tag balancing a list opened just
// before from. Lists of either kind count towards the depth.
func matchingListClose(s string, from int) (int, int, bool) {
	depth := 1
	pos := from
	for {
		loc := listTag.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			return 0, 0, false
		}
		if loc[3] > loc[2] {
			depth--
		} else {
			depth++
		}
		if depth == 0 {
			return pos + loc[0], pos + loc[1], true
		}
		pos += loc[1]
	}
}

// listItems splits a list body into the raw HTML of its top-level items.
// Items inside nested lists stay part of their parent item.
func listItems(inner string) []string {
	var items []string
	depth := 0
	start := -1

	for _, loc := range itemTag.FindAllStringSubmatchIndex(inner, -1) {
		closing := loc[3] > loc[2]
		isItem := strings.EqualFold(inner[loc[4]:loc[5]], "li")

		switch {
		case !isItem && !closing:
			depth++
		case !isItem:
			if depth > 0 {
				depth--
			}
		case depth > 0:
		case !closing:
			// An unclosed <li> ends at the next sibling.
			if start >= 0 {
				items = append(items, inner[start:loc[0]])
			}
			start = loc[1]
		default:
			if start >= 0 {
				items = append(items, inner[start:loc[0]])
				start = -1
			}
		}
	}

	if start >= 0 {
		items = append(items, inner[start:])
	}
	return items
}

// renderList numbers ordered items by position, so an empty item still
// takes its number even though it produces no line.
func renderList(inner string, kind listKind) string {
	var b strings.Builder
	for i, raw := range listItems(inner) {
		text := listItemText(raw)
		if text == "" {
			continue
		}
		b.WriteString(renderListLine(text, kind, i+1))
	}
	return b.String()
}

// listItemText returns the item's own text: anything from the first nested
// list onwards is dropped, tags are stripped and whitespace collapsed.
func listItemText(raw string) string {
	if loc := nestedListStart.FindStringIndex(raw); loc != nil {
		raw = raw[:loc[0]]
	}
	return strings.Join(strings.Fields(allTags.ReplaceAllString(raw, "")), " ")
}

func renderListLine(text string, kind listKind, index int) string {
	if kind == orderedList {
		return "<div>" + strconv.Itoa(index) + ". " + text + "</div>"
	}
	return "<div>" + BulletMarker + " " + text + "</div>"
}
