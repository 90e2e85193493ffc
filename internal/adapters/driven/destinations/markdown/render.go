package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	orderedLine   = regexp.MustCompile(`^\d+\.\s`)
)

const bulletPrefix = "• "

// hardBreak marks a <br> until whitespace has been collapsed.
const hardBreak = "\uE000"

type listKind int

const (
	notList listKind = iota
	bulletList
	orderedList
)

// block is one rendered Markdown block. Consecutive lines of the same list
// kind are joined without a blank line so they stay a single list.
type block struct {
	text string
	list listKind
}

// Render converts sanitised note HTML into Markdown.
//
// Headings, paragraphs, block quotes, preformatted text and lists are
// supported. Flattened list lines ("• item", "1. item") become Markdown
// list items. Unknown elements contribute their text.
func Render(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse note html: %w", err)
	}

	blocks := renderBlocks(doc.Find("body").First())
	return joinBlocks(blocks), nil
}

func joinBlocks(blocks []block) string {
	var sb strings.Builder
	for i, b := range blocks {
		if i > 0 {
			if b.list != notList && b.list == blocks[i-1].list {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(b.text)
	}
	return sb.String()
}

func renderBlocks(parent *goquery.Selection) []block {
	var blocks []block
	var pending strings.Builder

	// Loose inline content between blocks becomes its own paragraph.
	flush := func() {
		if text := cleanInline(pending.String()); text != "" {
			blocks = append(blocks, lineBlock(text))
		}
		pending.Reset()
	}

	parent.Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		switch name {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			flush()
			level := int(name[1] - '0')
			if text := cleanInline(renderInline(s)); text != "" {
				blocks = append(blocks, block{text: strings.Repeat("#", level) + " " + text})
			}
		case "p":
			flush()
			if text := cleanInline(renderInline(s)); text != "" {
				blocks = append(blocks, lineBlock(text))
			}
		case "div", "section", "article":
			flush()
			if hasBlockChildren(s) {
				blocks = append(blocks, renderBlocks(s)...)
			} else if text := cleanInline(renderInline(s)); text != "" {
				blocks = append(blocks, lineBlock(text))
			}
		case "ul", "ol":
			flush()
			blocks = append(blocks, renderList(s, name == "ol")...)
		case "blockquote":
			flush()
			if quoted := joinBlocks(renderBlocks(s)); quoted != "" {
				blocks = append(blocks, block{text: quoteLines(quoted)})
			}
		case "pre":
			flush()
			code := strings.Trim(s.Text(), "\n")
			blocks = append(blocks, block{text: "```\n" + code + "\n```"})
		case "hr":
			flush()
			blocks = append(blocks, block{text: "---"})
		case "#comment", "script", "style":
		default:
			pending.WriteString(renderNode(s))
		}
	})
	flush()

	return blocks
}

// lineBlock recognises flattened list lines.
func lineBlock(text string) block {
	if strings.HasPrefix(text, bulletPrefix) {
		return block{text: "- " + strings.TrimSpace(strings.TrimPrefix(text, bulletPrefix)), list: bulletList}
	}
	if orderedLine.MatchString(text) {
		return block{text: text, list: orderedList}
	}
	return block{text: text}
}

func renderList(list *goquery.Selection, ordered bool) []block {
	var blocks []block
	list.ChildrenFiltered("li").Each(func(i int, item *goquery.Selection) {
		text := cleanInline(renderInline(item.Clone().Find("ul, ol").Remove().End()))
		if text == "" {
			return
		}
		if ordered {
			blocks = append(blocks, block{text: fmt.Sprintf("%d. %s", i+1, text), list: orderedList})
		} else {
			blocks = append(blocks, block{text: "- " + text, list: bulletList})
		}
	})
	return blocks
}

func hasBlockChildren(s *goquery.Selection) bool {
	return s.ChildrenFiltered("p, div, h1, h2, h3, h4, h5, h6, ul, ol, blockquote, pre, hr, section, article").Length() > 0
}

func renderInline(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		sb.WriteString(renderNode(child))
	})
	return sb.String()
}

func renderNode(s *goquery.Selection) string {
	switch goquery.NodeName(s) {
	case "#text":
		return s.Text()
	case "#comment", "script", "style":
		return ""
	case "br":
		return hardBreak
	case "strong", "b":
		return wrapInline(renderInline(s), "**")
	case "em", "i":
		return wrapInline(renderInline(s), "*")
	case "s", "del", "strike":
		return wrapInline(renderInline(s), "~~")
	case "code":
		return wrapInline(s.Text(), "`")
	case "a":
		text := strings.TrimSpace(renderInline(s))
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return text
		}
		if text == "" {
			text = href
		}
		return "[" + text + "](" + href + ")"
	case "img":
		src, ok := s.Attr("src")
		if !ok {
			return ""
		}
		return "![" + s.AttrOr("alt", "") + "](" + src + ")"
	default:
		return renderInline(s)
	}
}

// wrapInline puts marker around text, keeping surrounding whitespace
// outside the markers so emphasis stays valid Markdown.
func wrapInline(text, marker string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	lead := text[:strings.Index(text, trimmed)]
	trail := text[len(lead)+len(trimmed):]
	return lead + marker + trimmed + marker + trail
}

// cleanInline collapses whitespace and turns <br> into Markdown hard breaks.
func cleanInline(text string) string {
	lines := strings.Split(text, hardBreak)
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "  \n")
}

func quoteLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}
