// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

// Merge combines the statistics of several playbacks.
//
// Counters and per-state durations are summed, the first reported time is the
// minimum and the longest rebuffer the maximum of the set inputs, and the valid
// join times are summed over the set inputs. The history is not kept because it
// only makes sense for a single playback. Merge() returns Empty().
func Merge(snapshots ...Snapshot) Snapshot {
	var merged Snapshot
	for i := range snapshots {
		s := &snapshots[i]

		merged.sessionCount += s.sessionCount
		for state := range merged.durations {
			merged.durations[state] += s.durations[state]
		}
		merged.firstReportedTimeMs = minDefined(merged.firstReportedTimeMs, s.firstReportedTimeMs)
		merged.foregroundCount += s.foregroundCount
		merged.abandonedBeforeReadyCount += s.abandonedBeforeReadyCount
		merged.endedCount += s.endedCount
		merged.backgroundJoiningCount += s.backgroundJoiningCount
		merged.totalValidJoinTimeMs = sumDefined(merged.totalValidJoinTimeMs, s.totalValidJoinTimeMs)
		merged.validJoinTimeCount += s.validJoinTimeCount
		merged.pauseCount += s.pauseCount
		merged.pauseWhileBufferingCount += s.pauseWhileBufferingCount
		merged.seekCount += s.seekCount
		merged.rebufferCount += s.rebufferCount
		merged.maxRebufferTimeMs = maxDefined(merged.maxRebufferTimeMs, s.maxRebufferTimeMs)
		merged.adPlaybackCount += s.adPlaybackCount
	}
	return merged
}
