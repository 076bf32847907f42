package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction       BookmarkType = "extinction"
	BookmarkPopulationCrash  BookmarkType = "population_crash"
	BookmarkCapacityReached  BookmarkType = "capacity_reached"
	BookmarkStablePopulation BookmarkType = "stable_population"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int32        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects population milestones across stats windows.
type BookmarkDetector struct {
	// Rolling history (circular buffer, oldest first once full)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentPeak         int  // peak population since the last crash
	atCapacity         bool // population was at capacity in the previous window
	stableWindowsCount int  // consecutive windows with low population variance
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for stable population detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkExtinction(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkCrash(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	if b := bd.checkCapacity(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	if b := bd.checkStable(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if stats.Cells > bd.recentPeak {
		bd.recentPeak = stats.Cells
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// recent returns up to n of the most recent windows, oldest first.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	count := bd.historyIdx
	if bd.historyFull {
		count = bd.historySize
	}
	if n > count {
		n = count
	}
	out := make([]WindowStats, n)
	for k := 0; k < n; k++ {
		idx := (bd.historyIdx - n + k + bd.historySize) % bd.historySize
		out[k] = bd.history[idx]
	}
	return out
}

func (bd *BookmarkDetector) previous() WindowStats {
	return bd.recent(1)[0]
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	prev := bd.previous()
	if stats.Cells != 0 || prev.Cells == 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkExtinction,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population died out from %d cells", prev.Cells),
	}
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 || stats.Cells == 0 {
		return nil
	}

	dropPercent := 1.0 - float64(stats.Cells)/float64(bd.recentPeak)
	if dropPercent > 0.30 && stats.Cells < bd.recentPeak-10 {
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Cells

		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Population crashed %.0f%% from peak %d to %d", dropPercent*100, oldPeak, stats.Cells),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkCapacity(stats WindowStats) *Bookmark {
	full := stats.Capacity > 0 && stats.Cells >= stats.Capacity
	rising := full && !bd.atCapacity
	bd.atCapacity = full
	if !rising {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkCapacityReached,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population reached capacity of %d cells", stats.Capacity),
	}
}

// checkStable runs after stats has been added to history.
func (bd *BookmarkDetector) checkStable(stats WindowStats) *Bookmark {
	if stats.Cells < 10 {
		bd.stableWindowsCount = 0
		return nil
	}

	window := bd.recent(4)
	if len(window) < 4 {
		return nil
	}

	var sum float64
	for _, h := range window {
		sum += float64(h.Cells)
	}
	mean := sum / 4

	var variance float64
	for _, h := range window {
		d := float64(h.Cells) - mean
		variance += d * d
	}
	variance /= 4

	if variance/(mean*mean) < 0.04 { // CV^2 < 0.04 means CV < 0.2
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == 5 { // trigger exactly once at 5 windows
		return &Bookmark{
			Type:        BookmarkStablePopulation,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Stable population around %.0f cells over 5+ windows", mean),
		}
	}

	return nil
}
