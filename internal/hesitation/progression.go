package hesitation

import "github.com/voxprep/voxprep/internal/providers/stt"

// temporalProgression compares filler density (fillers per segment) across the
// thirds of the clip to tell whether delivery settled down or unravelled.
func temporalProgression(tr *stt.Transcript, fillers fillerStats) TemporalProgression {
	var segStart, segMiddle, segEnd int
	if tr.Duration > 0 {
		third := tr.Duration / 3
		for _, seg := range tr.Segments {
			switch {
			case seg.Start < third:
				segStart++
			case seg.Start < 2*third:
				segMiddle++
			default:
				segEnd++
			}
		}
	}

	p := TemporalProgression{
		StartDensity:  density(fillers.distStart, segStart),
		MiddleDensity: density(fillers.distMiddle, segMiddle),
		EndDensity:    density(fillers.distEnd, segEnd),
	}

	switch {
	case p.EndDensity < 0.7*p.StartDensity:
		p.Trend = "improving"
	case p.EndDensity > 1.3*p.StartDensity:
		p.Trend = "declining"
	default:
		p.Trend = "stable"
	}
	return p
}

func density(fillers, segments int) float64 {
	if segments == 0 {
		return 0
	}
	return float64(fillers) / float64(segments)
}
