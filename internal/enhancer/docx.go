package enhancer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	fontColor = "000000"
)

var (
	reHeading   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet    = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reQuote     = regexp.MustCompile(`^>\s?(.*)$`)
	reTOCLink   = regexp.MustCompile(`\[([^\]]+)\]\(#[^)]*\)`)
	reCodeFence = regexp.MustCompile("^```")
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBullet
	blockQuote
)

type block struct {
	kind  blockKind
	level int
	text  string
}

// parseBlocks reduces a Markdown document to the line-level blocks the DOCX
// export understands. Rules, blank lines and code fences are dropped.
func parseBlocks(markdown string) []block {
	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" || reCodeFence.MatchString(trimmed) {
			continue
		}
		trimmed = reTOCLink.ReplaceAllString(trimmed, "$1")

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
			continue
		}
		if m := reQuote.FindStringSubmatch(trimmed); m != nil {
			if m[1] == "" {
				continue
			}
			blocks = append(blocks, block{kind: blockQuote, text: m[1]})
			continue
		}
		blocks = append(blocks, block{kind: blockParagraph, text: trimmed})
	}
	return blocks
}

// WriteDocx renders the Markdown report as a styled Word document.
func WriteDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, b := range parseBlocks(markdown) {
		p := doc.AddParagraph("")
		switch b.kind {
		case blockHeading:
			addStyledRun(p, b.text, true, headingSize(b.level))
		case blockBullet:
			addRichText(p, "• "+b.text)
		case blockQuote:
			addRichText(p, "“"+b.text+"”")
		default:
			addRichText(p, b.text)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", outputPath, err)
	}
	return nil
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color(fontColor)
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
