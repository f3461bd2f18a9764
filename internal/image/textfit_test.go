package imagepkg

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
)

// fixedWidth measures every rune as w pixels, spaces included.
func fixedWidth(w float64) MeasureFunc {
	return func(s string) float64 {
		return w * float64(utf8.RuneCountInString(s))
	}
}

func TestNormalizeSlogan(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Ma culture est ma force", "MA CULTURE EST MA FORCE"},
		{"", FallbackSlogan},
		{"   \t\n ", FallbackSlogan},
		{"  mon   identité\tà moi ", "MON IDENTITÉ À MOI"},
		{strings.Repeat("a", 70), strings.Repeat("A", 60)},
		{strings.Repeat("é", 61), strings.Repeat("É", 60)},
		{strings.Repeat("a", 59) + " b", strings.Repeat("A", 59)},
	}
	for _, tc := range cases {
		if got := NormalizeSlogan(tc.in); got != tc.want {
			t.Errorf("NormalizeSlogan(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFontSizeFor(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{1, 65}, {25, 65}, {26, 52}, {45, 52}, {46, 42}, {60, 42},
	}
	for _, tc := range cases {
		if got := FontSizeFor(strings.Repeat("É", tc.n)); got != tc.want {
			t.Errorf("FontSizeFor(%d runes) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestWrapLinesGreedy(t *testing.T) {
	got := WrapLines("MA CULTURE EST MA FORCE", 100, fixedWidth(10))
	want := []string{"MA CULTURE", "EST MA", "FORCE"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("WrapLines = %q, want %q", got, want)
	}
}

func TestWrapLinesBreaksLongWords(t *testing.T) {
	got := WrapLines("AB ABCDEFGHIJKL CD", 50, fixedWidth(10))
	want := []string{"AB", "ABCDE", "FGHIJ", "KL CD"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("WrapLines = %q, want %q", got, want)
	}
}

func TestWrapLinesEmpty(t *testing.T) {
	if got := WrapLines("   ", 100, fixedWidth(10)); len(got) != 0 {
		t.Fatalf("WrapLines = %q", got)
	}
}

func randomSlogan(r *rand.Rand) string {
	var words []string
	n := 0
	for n < MaxSloganRunes {
		w := strings.Repeat("W", 1+r.IntN(12))
		words = append(words, w)
		n += len(w) + 1
	}
	return NormalizeSlogan(strings.Join(words, " "))
}

func TestWrapLinesProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	measure := fixedWidth(11)
	for i := 0; i < 500; i++ {
		text := randomSlogan(r)
		prev := -1
		for budget := 150.0; budget <= 900; budget += 25 {
			lines := WrapLines(text, budget, measure)
			for _, l := range lines {
				if measure(l) > budget {
					t.Fatalf("%q at %v: line %q is %v wide", text, budget, l, measure(l))
				}
			}
			if strings.Join(lines, " ") != text {
				t.Fatalf("%q at %v: words lost: %q", text, budget, lines)
			}
			if prev >= 0 && len(lines) > prev {
				t.Fatalf("%q: widening to %v raised line count %d -> %d", text, budget, prev, len(lines))
			}
			prev = len(lines)
		}

		full := WrapLines(text, SloganBudget, measure)
		words := strings.Fields(text)
		shorter := strings.Join(words[:len(words)-1], " ")
		if len(WrapLines(shorter, SloganBudget, measure)) > len(full) {
			t.Fatalf("dropping a word from %q raised the line count", text)
		}
	}
}

func TestWrapLinesRealFontFitsBudget(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	slogans := []string{
		"Ma culture est ma force",
		"Fier de mes racines, fier de mon histoire, fier!",
		"Le Vodun est une culture vivante qui nous rassemble tous ici",
		strings.Repeat("é", 60),
		"",
	}
	for _, raw := range slogans {
		s := NormalizeSlogan(raw)
		face, err := fonts.Bold(FontSizeFor(s))
		if err != nil {
			t.Fatal(err)
		}
		measure := MeasureWith(face)
		for _, l := range WrapLines(s, SloganBudget, measure) {
			if w := measure(l); w > SloganBudget {
				t.Errorf("%q: line %q is %v px, budget %d", s, l, w, SloganBudget)
			}
		}
		face.Close()
	}
}

func TestLayoutSloganAnchorsLastLine(t *testing.T) {
	measure := fixedWidth(30)
	for _, s := range []string{"COURT", "MA CULTURE EST MA FORCE", strings.Repeat("AB ", 20)} {
		s = NormalizeSlogan(s)
		size := FontSizeFor(s)
		l := LayoutSlogan(s, size, measure)
		last := l.Baselines[len(l.Baselines)-1]
		if last != footerBaseline {
			t.Errorf("%q: last baseline %v, want %v", s, last, float64(footerBaseline))
		}
		if l.LineHeight != size*lineHeightFactor {
			t.Errorf("%q: line height %v", s, l.LineHeight)
		}
		if l.Height() != float64(len(l.Lines))*l.LineHeight {
			t.Errorf("%q: height %v", s, l.Height())
		}
		for i, line := range l.Lines {
			if right := l.X[i] + measure(line); right != sloganRight {
				t.Errorf("%q: line %d ends at %v, want %v", s, i, right, float64(sloganRight))
			}
			if l.X[i] < sloganLeft {
				t.Errorf("%q: line %d starts at %v, inside the logo column", s, i, l.X[i])
			}
		}
	}
}

func TestLongSloganUsesSmallTierAndMoreLines(t *testing.T) {
	fonts, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	layout := func(raw string) SloganLayout {
		s := NormalizeSlogan(raw)
		face, err := fonts.Bold(FontSizeFor(s))
		if err != nil {
			t.Fatal(err)
		}
		defer face.Close()
		return LayoutSlogan(s, FontSizeFor(s), MeasureWith(face))
	}
	short := layout("Ma culture est ma force")
	const longText = "Notre culture vodun est notre fierté, notre voix et notre joie"
	long := layout(longText)
	if short.FontSize != 65 || len(short.Lines) > 2 {
		t.Errorf("short slogan: size %v, %d lines", short.FontSize, len(short.Lines))
	}
	if long.FontSize != 42 {
		t.Errorf("long slogan: size %v, want 42", long.FontSize)
	}
	if len(long.Lines) < 2 || len(long.Lines) <= len(short.Lines) {
		t.Errorf("long slogan has %d lines, short has %d", len(long.Lines), len(short.Lines))
	}
}
