package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/agri-advisor/internal/advisor"
	"github.com/muurk/agri-advisor/internal/render"
)

// ResultOptions controls how a result is laid out
type ResultOptions struct {
	Width        int    // Total width available
	Zoom         int    // Map tile zoom level
	TileTemplate string // Map tile URL template (OpenStreetMap when empty)
	Copied       bool   // Show "Copied!" in place of the copy hint
	CopyHint     string // e.g. "ctrl+y copy"; empty hides the hint
}

// Map grid size limits
const (
	mapGridHeight   = 9
	mapGridMaxWidth = 37
)

// Card titles
const (
	MapCardTitle      = "Location"
	WeatherCardTitle  = "Current Weather"
	AdviceCardTitle   = "Recommendation"
	FullTextCardTitle = "Complete Recommendation"
	CopiedLabel       = "Copied!"
)

// IsWide reports whether the three result cards fit side by side
func IsWide(width int) bool {
	return width >= WideLayoutWidth
}

// RenderResult renders the results header and the map, weather and advice
// cards. Wide terminals get the cards side by side; narrow ones get them
// stacked, followed by the complete advice text.
func RenderResult(r *advisor.QueryResult, opts ResultOptions) string {
	width := ClampWidth(opts.Width)
	header := RenderResultsHeader(r.DisplayLocation(), width)

	cardWidth := width
	if IsWide(width) {
		cardWidth = (width - 2*CardGap) / 3
	}

	gridWidth := CardContentWidth(cardWidth)
	if gridWidth > mapGridMaxWidth {
		gridWidth = mapGridMaxWidth
	}

	mapView := render.Map(r.Location, r.Coordinates, opts.Zoom, opts.TileTemplate, gridWidth, mapGridHeight)
	weatherView := render.Weather(r.Weather)
	blocks := render.ParseAdvice(r.Response)

	contents := []string{
		mapCardContent(mapView, cardWidth),
		weatherCardContent(weatherView, cardWidth),
		adviceCardContent(blocks, cardWidth, opts),
	}

	if IsWide(width) {
		cards := renderCards(contents, cardWidth, true)
		gap := strings.Repeat(" ", CardGap)
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], gap, cards[1], gap, cards[2])
		return lipgloss.JoinVertical(lipgloss.Left, header, "", row)
	}

	cards := renderCards(contents, cardWidth, false)
	parts := []string{header, ""}
	parts = append(parts, cards...)
	parts = append(parts, RenderFullTextCard(r.Response, width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderResultsHeader renders "Agricultural Advice for <location>"
func RenderResultsHeader(location string, width int) string {
	title := ResultsTitleStyle.Render("Agricultural Advice for " + location)
	subtitle := ResultsSubtitleStyle.Render("Based on current weather conditions and expert analysis")
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitle),
	)
}

// RenderFullTextCard renders the raw advice text, line breaks preserved
func RenderFullTextCard(text string, width int) string {
	cw := CardContentWidth(width)
	body := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if body == "" {
		body = MutedStyle.Render("No advice returned.")
	} else {
		body = BodyStyle.Width(cw).Render(body)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		CardTitleStyle.Render(FullTextCardTitle),
		"",
		body,
	)
	return CardStyle(width).Render(content)
}

// renderCards wraps each content block in a card, optionally padding all
// cards to the height of the tallest
func renderCards(contents []string, width int, equalHeight bool) []string {
	cards := make([]string, len(contents))
	maxHeight := 0
	for i, c := range contents {
		cards[i] = CardStyle(width).Render(c)
		if h := lipgloss.Height(cards[i]); h > maxHeight {
			maxHeight = h
		}
	}

	if !equalHeight {
		return cards
	}

	for i, c := range contents {
		if lipgloss.Height(cards[i]) < maxHeight {
			// Height excludes the top and bottom border
			cards[i] = CardStyle(width).Height(maxHeight - 2).Render(c)
		}
	}
	return cards
}

func mapCardContent(view render.MapView, width int) string {
	cw := CardContentWidth(width)
	lines := []string{CardTitleStyle.Render(MapCardTitle), ""}

	if !view.Valid {
		lines = append(lines,
			MutedStyle.Width(cw).Render("Map unavailable: the backend returned no usable coordinates."),
			"",
			HeadlineStyle.Width(cw).Render(view.Location),
			MutedStyle.Render(view.Coordinates),
		)
		return strings.Join(lines, "\n")
	}

	for _, row := range view.Grid {
		lines = append(lines, renderGridRow(row))
	}

	lines = append(lines,
		"",
		HeadlineStyle.Width(cw).Render(view.Location),
		MutedStyle.Render(view.Coordinates),
		"",
		MutedStyle.Render(fmt.Sprintf("Tile %d/%d/%d", view.Tile.Z, view.Tile.X, view.Tile.Y)),
		LinkStyle.Width(cw).Render(view.BrowseURL),
		MutedStyle.Width(cw).Render(view.Attribution),
	)

	return strings.Join(lines, "\n")
}

// renderGridRow colors the marker separately from the grid
func renderGridRow(row string) string {
	const marker = "◉"
	i := strings.Index(row, marker)
	if i < 0 {
		return MutedStyle.Render(row)
	}
	return MutedStyle.Render(row[:i]) +
		ErrorTitleStyle.Render(marker) +
		MutedStyle.Render(row[i+len(marker):])
}

func weatherCardContent(view render.WeatherView, width int) string {
	cw := CardContentWidth(width)

	headline := lipgloss.NewStyle().
		Foreground(iconColor(view.Icon)).
		Render(view.Icon.Glyph()) + "  " + HeadlineStyle.Render(view.Headline)

	lines := []string{
		CardTitleStyle.Render(WeatherCardTitle),
		"",
		headline,
		BodyStyle.Width(cw).Render(view.Condition),
		MutedStyle.Render(view.FeelsLike),
		"",
	}

	showSubtitle := cw >= MetricLabelStyle.GetWidth()+MetricValueStyle.GetWidth()+18
	for _, m := range view.Metrics {
		line := MetricLabelStyle.Render(m.Label) + MetricValueStyle.Render(m.Value)
		if showSubtitle {
			line += MutedStyle.Render(m.Subtitle)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", NoticeStyle.Width(cw).Render(InfoMarker+" "+view.Notice))

	return strings.Join(lines, "\n")
}

func adviceCardContent(blocks []render.Block, width int, opts ResultOptions) string {
	cw := CardContentWidth(width)
	lines := []string{adviceTitleRow(cw, opts), ""}

	if len(blocks) == 0 {
		lines = append(lines, MutedStyle.Render("No advice returned."))
	}

	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		switch b.Kind {
		case render.BlockHeading:
			lines = append(lines, AdviceHeadingStyle.Width(cw).Render(b.Text))
		case render.BlockList:
			for _, item := range b.Items {
				text := BodyStyle.Width(cw - 2).Render(item)
				lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, AdviceHeadingStyle.Render(BulletMarker+" "), text))
			}
		default:
			lines = append(lines, BodyStyle.Width(cw).Render(b.Text))
		}
	}

	lines = append(lines, "", MutedStyle.Width(cw).Render(render.AdviceFooter))
	return strings.Join(lines, "\n")
}

// adviceTitleRow puts the copy hint (or "Copied!") right-aligned next to
// the card title
func adviceTitleRow(cw int, opts ResultOptions) string {
	title := CardTitleStyle.Render(AdviceCardTitle)

	var right string
	switch {
	case opts.Copied:
		right = CopiedStyle.Render(SuccessMarker + " " + CopiedLabel)
	case opts.CopyHint != "":
		right = MutedStyle.Render(opts.CopyHint)
	default:
		return title
	}

	gap := cw - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		return title + "\n" + right
	}
	return title + strings.Repeat(" ", gap) + right
}

func iconColor(icon render.Icon) lipgloss.Color {
	switch icon {
	case render.IconRain:
		return InfoColor
	case render.IconSnow:
		return TextColor
	case render.IconCloud:
		return MutedColor
	default:
		return WarningColor
	}
}
