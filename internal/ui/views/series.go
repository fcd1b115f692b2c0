package views

import (
	"fmt"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"termviz/internal/dataset"
)

// sparks are the bar runes a sparkline is built from, lowest to highest.
var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the last width points of a series as one line of bar
// runes, scaled between the window's minimum and maximum. A flat window
// renders as the lowest bar.
func Sparkline(points []float64, width int) string {
	if width <= 0 || len(points) == 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := points[0], points[0]
	for _, v := range points[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	span := hi - lo
	for _, v := range points {
		idx := 0
		if span > 0 {
			idx = int(math.Round((v - lo) / span * float64(len(sparks)-1)))
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

// SeriesRenderer renders one series row. Styled rows are cached so a
// frame that only moves the cursor does not restyle every sparkline.
type SeriesRenderer struct {
	styles *Styles
	cache  *lru.Cache[string, string]
}

// NewSeriesRenderer creates a series renderer with a bounded row cache.
func NewSeriesRenderer(styles *Styles) *SeriesRenderer {
	// 512 rows covers several screens of series in both cursor states.
	cache, _ := lru.New[string, string](512)
	return &SeriesRenderer{styles: styles, cache: cache}
}

// RenderSeries renders a series as a single row: marker, name, sparkline
// and the latest value.
func (r *SeriesRenderer) RenderSeries(s *dataset.Series, width int, isCursor, isSelected bool, multiSelect bool) string {
	if s == nil {
		return ""
	}

	key := rowKey(s, width, isCursor, isSelected, multiSelect)
	if row, ok := r.cache.Get(key); ok {
		return row
	}

	bg := lipglossNop
	if isCursor {
		bg = r.styles.CursorBg.Render
	} else if isSelected {
		bg = r.styles.SelectionBg.Render
	}

	var parts []string

	if multiSelect {
		marker := "[ ]"
		if isSelected {
			marker = "[x]"
		}
		parts = append(parts, bg(marker), bg(" "))
	}

	name := fmt.Sprintf("%-8s", s.Name)
	if isSelected {
		parts = append(parts, r.styles.Highlight.Render(name))
	} else {
		parts = append(parts, bg(name))
	}
	parts = append(parts, bg(" "))

	sparkWidth := width - 30
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	spark := Sparkline(s.Points, sparkWidth)
	if isSelected {
		parts = append(parts, r.styles.SparkFocus.Render(spark))
	} else {
		parts = append(parts, r.styles.Spark.Render(spark))
	}

	parts = append(parts, bg(" "), r.styles.Unit.Render(fmt.Sprintf("%7.1f %s", s.Last(), s.Unit)))

	row := strings.Join(parts, "")
	r.cache.Add(key, row)
	return row
}

func rowKey(s *dataset.Series, width int, isCursor, isSelected, multiSelect bool) string {
	// Length plus last value identifies the visible window of an
	// append-only series well enough for a cache key.
	return fmt.Sprintf("%s|%d|%x|%d|%t|%t|%t",
		s.ID, len(s.Points), math.Float64bits(s.Last()), width, isCursor, isSelected, multiSelect)
}

func lipglossNop(strs ...string) string { return strings.Join(strs, "") }
