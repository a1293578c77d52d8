package render

import (
	"regexp"
	"strings"
)

// BlockKind is the display form of one block of advice text
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockList
)

// String returns the kind name
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockList:
		return "list"
	default:
		return "paragraph"
	}
}

// Block is one paragraph, heading or list of the advice text
type Block struct {
	Kind  BlockKind
	Text  string   // Heading or paragraph text
	Items []string // List items
}

// AdviceFooter is shown under the advice
const AdviceFooter = "AI-generated advice • Always consult local agricultural experts for critical decisions"

const paragraphSep = "\n\n"

var (
	capsHeading  = regexp.MustCompile(`^[A-Z\s]+:$`)
	headingMarks = regexp.MustCompile(`^#+\s*`)
	bulletMarker = regexp.MustCompile(`^[•\-]\s*`)
)

// ParseAdvice splits advice text on blank lines and classifies each block.
//
// A block is a heading when it starts with "#" (the marks are removed) or is
// an all-capitals line ending in ":". It is a list when it contains "•" or
// "-"; each non-blank line becomes an item with its bullet removed.
// Everything else is a paragraph. Blank blocks are skipped.
func ParseAdvice(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []Block
	for _, raw := range strings.Split(text, paragraphSep) {
		block := strings.TrimSpace(raw)
		if block == "" {
			continue
		}

		switch {
		case strings.HasPrefix(block, "#") || capsHeading.MatchString(block):
			blocks = append(blocks, Block{
				Kind: BlockHeading,
				Text: headingMarks.ReplaceAllString(block, ""),
			})

		case strings.ContainsAny(block, "•-"):
			blocks = append(blocks, Block{
				Kind:  BlockList,
				Items: listItems(block),
			})

		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: block})
		}
	}

	return blocks
}

func listItems(block string) []string {
	var items []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, bulletMarker.ReplaceAllString(line, ""))
	}
	return items
}
