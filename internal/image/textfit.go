package imagepkg

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxSloganRunes is the longest slogan the engine will lay out.
	MaxSloganRunes = 60
	// FallbackSlogan replaces an empty or blank slogan.
	FallbackSlogan = "MA CULTURE EST MA FORCE"

	sloganLeft       = footerMargin + logoWidth + logoGap
	sloganRight      = CanvasSize - footerMargin
	SloganBudget     = sloganRight - sloganLeft
	lineHeightFactor = 1.1

	sloganSizeLarge  = 65
	sloganSizeMedium = 52
	sloganSizeSmall  = 42
)

// MeasureFunc returns the rendered width of s in pixels.
type MeasureFunc func(s string) float64

// NormalizeSlogan collapses whitespace, truncates to MaxSloganRunes and
// uppercases. Blank input yields FallbackSlogan.
func NormalizeSlogan(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > MaxSloganRunes {
		s = strings.TrimSpace(string([]rune(s)[:MaxSloganRunes]))
	}
	if s == "" {
		return FallbackSlogan
	}
	return cases.Upper(language.French).String(s)
}

// FontSizeFor picks the slogan font size from its length.
func FontSizeFor(slogan string) float64 {
	n := utf8.RuneCountInString(slogan)
	switch {
	case n > 45:
		return sloganSizeSmall
	case n > 25:
		return sloganSizeMedium
	}
	return sloganSizeLarge
}

// WrapLines greedily packs the words of text into lines no wider than
// budget. A single word wider than budget is broken between runes.
func WrapLines(text string, budget float64, measure MeasureFunc) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= budget {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if measure(word) <= budget {
			line = word
			continue
		}
		parts := breakWord(word, budget, measure)
		lines = append(lines, parts[:len(parts)-1]...)
		line = parts[len(parts)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func breakWord(word string, budget float64, measure MeasureFunc) []string {
	var parts []string
	var cur []rune
	for _, r := range word {
		next := append(cur, r)
		if len(cur) > 0 && measure(string(next)) > budget {
			parts = append(parts, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	return append(parts, string(cur))
}

// SloganLayout is the footer text block: right-aligned lines whose last
// baseline sits on the footer baseline.
type SloganLayout struct {
	FontSize   float64
	LineHeight float64
	Lines      []string
	X          []float64
	Baselines  []float64
}

// LayoutSlogan wraps an already normalized slogan at fontSize, measuring
// with measure, and stacks the lines upward from the footer baseline.
func LayoutSlogan(slogan string, fontSize float64, measure MeasureFunc) SloganLayout {
	lines := WrapLines(slogan, SloganBudget, measure)
	l := SloganLayout{
		FontSize:   fontSize,
		LineHeight: fontSize * lineHeightFactor,
		Lines:      lines,
		X:          make([]float64, len(lines)),
		Baselines:  make([]float64, len(lines)),
	}
	for i, line := range lines {
		l.X[i] = sloganRight - measure(line)
		l.Baselines[i] = footerBaseline - float64(len(lines)-1-i)*l.LineHeight
	}
	return l
}

// Height is lineCount × lineHeight.
func (l SloganLayout) Height() float64 {
	return float64(len(l.Lines)) * l.LineHeight
}

// bounds is a generous pixel box around the block, used for the shadow layer.
func (l SloganLayout) bounds(pad float64) (x0, y0, x1, y1 int) {
	if len(l.Lines) == 0 {
		return 0, 0, 0, 0
	}
	x0 = int(math.Floor(sloganLeft - pad))
	y0 = int(math.Floor(l.Baselines[0] - l.FontSize - pad))
	x1 = int(math.Ceil(sloganRight + pad))
	y1 = int(math.Ceil(l.Baselines[len(l.Baselines)-1] + l.FontSize*0.3 + pad))
	return x0, y0, x1, y1
}
