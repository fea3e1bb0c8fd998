package hesitation

import "github.com/voxprep/voxprep/internal/providers/stt"

// Pause taxonomy thresholds in seconds.
const (
	pauseFloor    = 0.3 // gaps below this are articulation, not pauses
	thinkingPause = 0.5
	longPause     = 1.0
	nervousPause  = 2.0
)

// analyzePauses prefers intra-segment word gaps; transcripts without word
// timing fall back to between-segment gaps.
func analyzePauses(tr *stt.Transcript) Pauses {
	gaps := wordGaps(tr)
	if gaps == nil {
		gaps = segmentGaps(tr)
	}

	var p Pauses
	var sum float64
	var n int
	for _, g := range gaps {
		if g < pauseFloor {
			continue
		}
		n++
		sum += g
		if g > p.MaxSeconds {
			p.MaxSeconds = g
		}
		switch {
		case g >= nervousPause:
			p.NervousCount++
		case g >= longPause:
			p.LongCount++
		case g >= thinkingPause:
			p.ThinkingCount++
		}
	}
	if n > 0 {
		p.AverageSeconds = sum / float64(n)
	}
	p.Pattern = pausePattern(p, n)
	return p
}

func wordGaps(tr *stt.Transcript) []float64 {
	var gaps []float64
	for _, seg := range tr.Segments {
		for i := 1; i < len(seg.Words); i++ {
			gaps = append(gaps, seg.Words[i].Start-seg.Words[i-1].End)
		}
	}
	return gaps
}

func segmentGaps(tr *stt.Transcript) []float64 {
	var gaps []float64
	for i := 1; i < len(tr.Segments); i++ {
		gaps = append(gaps, tr.Segments[i].Start-tr.Segments[i-1].End)
	}
	return gaps
}

func pausePattern(p Pauses, qualifying int) string {
	if qualifying == 0 {
		return "smooth"
	}
	switch {
	case p.NervousCount > 0:
		return "frequent_uncertainty"
	case p.LongCount >= 2:
		return "frequent_long_pauses"
	case p.ThinkingCount > p.LongCount+p.NervousCount:
		return "thoughtful"
	case p.AverageSeconds > 0.8:
		return "moderate_pauses"
	default:
		return "normal"
	}
}
