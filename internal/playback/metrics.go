// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

// Derived metrics. Means of durations are unset when their denominator is zero;
// ratios, rates and mean counts are 0 in that case, meaning no evidence of the
// behavior rather than an unknown value.

// MeanJoinTimeMs is the mean foreground join time over playbacks with a valid join time.
func (s Snapshot) MeanJoinTimeMs() TimeValue {
	return meanOf(s.totalValidJoinTimeMs, s.validJoinTimeCount)
}

// TotalJoinTimeMs is the total time spent joining in the foreground, including
// joins that never became ready or were interrupted.
func (s Snapshot) TotalJoinTimeMs() int64 {
	return s.DurationOf(JoiningForeground)
}

// TotalPlayTimeMs is the total time spent actively playing.
func (s Snapshot) TotalPlayTimeMs() int64 {
	return s.DurationOf(Playing)
}

// MeanPlayTimeMs is the play time per foreground playback.
func (s Snapshot) MeanPlayTimeMs() TimeValue {
	return s.perForeground(s.TotalPlayTimeMs())
}

// TotalPausedTimeMs is the total time spent paused, with or without buffering.
func (s Snapshot) TotalPausedTimeMs() int64 {
	return s.DurationOf(Paused) + s.DurationOf(PausedBuffering)
}

// MeanPausedTimeMs is the paused time per foreground playback.
func (s Snapshot) MeanPausedTimeMs() TimeValue {
	return s.perForeground(s.TotalPausedTimeMs())
}

// TotalRebufferTimeMs is the total time spent rebuffering. Joining, buffering
// after a seek and buffering while paused are excluded.
func (s Snapshot) TotalRebufferTimeMs() int64 {
	return s.DurationOf(Buffering)
}

// MeanRebufferTimeMs is the rebuffer time per foreground playback.
func (s Snapshot) MeanRebufferTimeMs() TimeValue {
	return s.perForeground(s.TotalRebufferTimeMs())
}

// MeanSingleRebufferTimeMs is the mean length of one rebuffer, including time
// paused while buffering. Unset when no rebuffer occurred.
func (s Snapshot) MeanSingleRebufferTimeMs() TimeValue {
	total := s.DurationOf(Buffering) + s.DurationOf(PausedBuffering)
	return meanOf(Millis(total), s.rebufferCount)
}

// TotalSeekTimeMs is the total time from the start of seeks until playback was ready again.
func (s Snapshot) TotalSeekTimeMs() int64 {
	return s.DurationOf(Seeking) + s.DurationOf(SeekBuffering)
}

// MeanSeekTimeMs is the seek time per foreground playback.
func (s Snapshot) MeanSeekTimeMs() TimeValue {
	return s.perForeground(s.TotalSeekTimeMs())
}

// MeanSingleSeekTimeMs is the mean time of one seek. Unset when no seek occurred.
func (s Snapshot) MeanSingleSeekTimeMs() TimeValue {
	return meanOf(Millis(s.TotalSeekTimeMs()), s.seekCount)
}

// TotalWaitTimeMs is the time spent actively waiting for playback: joining,
// rebuffering and seeking. Paused states are excluded since waiting implies
// the intention to play.
func (s Snapshot) TotalWaitTimeMs() int64 {
	return s.DurationOf(JoiningForeground) +
		s.DurationOf(Buffering) +
		s.DurationOf(Seeking) +
		s.DurationOf(SeekBuffering)
}

// MeanWaitTimeMs is the wait time per foreground playback.
func (s Snapshot) MeanWaitTimeMs() TimeValue {
	return s.perForeground(s.TotalWaitTimeMs())
}

// TotalPlayAndWaitTimeMs is the time spent playing or actively waiting.
func (s Snapshot) TotalPlayAndWaitTimeMs() int64 {
	return s.TotalPlayTimeMs() + s.TotalWaitTimeMs()
}

// MeanPlayAndWaitTimeMs is the play and wait time per foreground playback.
func (s Snapshot) MeanPlayAndWaitTimeMs() TimeValue {
	return s.perForeground(s.TotalPlayAndWaitTimeMs())
}

// TotalElapsedTimeMs is the time covered by any state.
func (s Snapshot) TotalElapsedTimeMs() int64 {
	var total int64
	for _, d := range s.durations {
		total += d
	}
	return total
}

// MeanElapsedTimeMs is the elapsed time per playback. Unset when no playback was recorded.
func (s Snapshot) MeanElapsedTimeMs() TimeValue {
	return meanOf(Millis(s.TotalElapsedTimeMs()), s.sessionCount)
}

// AbandonedBeforeReadyRatio is the share of foreground playbacks abandoned
// before they were ready. Playbacks that only ever joined in the background are
// not counted as abandoned.
func (s Snapshot) AbandonedBeforeReadyRatio() float64 {
	backgroundOnly := s.sessionCount - s.foregroundCount
	return s.ratioPerForeground(s.abandonedBeforeReadyCount - backgroundOnly)
}

// EndedRatio is the share of foreground playbacks that reached the end.
func (s Snapshot) EndedRatio() float64 {
	return s.ratioPerForeground(s.endedCount)
}

// MeanPauseCount is the number of pauses per foreground playback.
func (s Snapshot) MeanPauseCount() float64 {
	return s.ratioPerForeground(s.pauseCount)
}

// MeanPauseBufferCount is the number of pauses while rebuffering per foreground playback.
func (s Snapshot) MeanPauseBufferCount() float64 {
	return s.ratioPerForeground(s.pauseWhileBufferingCount)
}

// MeanSeekCount is the number of seeks per foreground playback.
func (s Snapshot) MeanSeekCount() float64 {
	return s.ratioPerForeground(s.seekCount)
}

// MeanRebufferCount is the number of rebuffers per foreground playback.
func (s Snapshot) MeanRebufferCount() float64 {
	return s.ratioPerForeground(s.rebufferCount)
}

// WaitTimeRatio is TotalWaitTimeMs / TotalPlayAndWaitTimeMs. It equals
// JoinTimeRatio + RebufferTimeRatio + SeekTimeRatio.
func (s Snapshot) WaitTimeRatio() float64 {
	return s.ratioOfPlayAndWait(s.TotalWaitTimeMs())
}

// JoinTimeRatio is TotalJoinTimeMs / TotalPlayAndWaitTimeMs.
func (s Snapshot) JoinTimeRatio() float64 {
	return s.ratioOfPlayAndWait(s.TotalJoinTimeMs())
}

// RebufferTimeRatio is TotalRebufferTimeMs / TotalPlayAndWaitTimeMs.
func (s Snapshot) RebufferTimeRatio() float64 {
	return s.ratioOfPlayAndWait(s.TotalRebufferTimeMs())
}

// SeekTimeRatio is TotalSeekTimeMs / TotalPlayAndWaitTimeMs.
func (s Snapshot) SeekTimeRatio() float64 {
	return s.ratioOfPlayAndWait(s.TotalSeekTimeMs())
}

// RebufferRate is the number of rebuffers per second of play time, 0 without play time.
func (s Snapshot) RebufferRate() float64 {
	playTimeMs := s.TotalPlayTimeMs()
	if playTimeMs == 0 {
		return 0
	}
	return 1000 * float64(s.rebufferCount) / float64(playTimeMs)
}

// MeanTimeBetweenRebuffers is the mean play time between rebuffers in seconds,
// i.e. 1 / RebufferRate. It is +Inf when no rebuffer was observed.
func (s Snapshot) MeanTimeBetweenRebuffers() float64 {
	rate := s.RebufferRate()
	return 1 / rate
}

func (s Snapshot) perForeground(totalMs int64) TimeValue {
	return meanOf(Millis(totalMs), s.foregroundCount)
}

func (s Snapshot) ratioPerForeground(count int) float64 {
	if s.foregroundCount == 0 {
		return 0
	}
	return float64(count) / float64(s.foregroundCount)
}

func (s Snapshot) ratioOfPlayAndWait(partMs int64) float64 {
	total := s.TotalPlayAndWaitTimeMs()
	if total == 0 {
		return 0
	}
	return float64(partMs) / float64(total)
}
