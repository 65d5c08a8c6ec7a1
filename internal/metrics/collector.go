// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/playstats/internal/playback"
)

type countMetric struct {
	desc  *prometheus.Desc
	value func(playback.Snapshot) int
}

type ratioMetric struct {
	desc  *prometheus.Desc
	value func(playback.Snapshot) float64
}

type timeMetric struct {
	desc  *prometheus.Desc
	value func(playback.Snapshot) playback.TimeValue
}

// SnapshotCollector exposes one Snapshot as constant gauges.
// Unset time values are omitted rather than reported as zero.
type SnapshotCollector struct {
	snapshot playback.Snapshot

	stateSeconds *prometheus.Desc
	counts       []countMetric
	ratios       []ratioMetric
	times        []timeMetric
}

// NewSnapshotCollector creates a collector whose metric names start with namespace.
func NewSnapshotCollector(namespace string, snapshot playback.Snapshot) *SnapshotCollector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}

	return &SnapshotCollector{
		snapshot:     snapshot,
		stateSeconds: desc("state_duration_seconds", "Total time spent in each playback state", "state"),
		counts: []countMetric{
			{desc("sessions", "Number of playback sessions aggregated"), playback.Snapshot.SessionCount},
			{desc("foreground_sessions", "Sessions that reached a foreground state"), playback.Snapshot.ForegroundCount},
			{desc("abandoned_before_ready_sessions", "Sessions that never became ready"), playback.Snapshot.AbandonedBeforeReadyCount},
			{desc("ended_sessions", "Sessions that played to the end"), playback.Snapshot.EndedCount},
			{desc("background_joining_sessions", "Sessions that joined in the background"), playback.Snapshot.BackgroundJoiningCount},
			{desc("valid_joins", "Joins that completed without seek, stop or failure"), playback.Snapshot.ValidJoinTimeCount},
			{desc("pauses", "Number of pauses"), playback.Snapshot.PauseCount},
			{desc("pauses_while_buffering", "Number of pauses during a rebuffer"), playback.Snapshot.PauseWhileBufferingCount},
			{desc("seeks", "Number of seeks"), playback.Snapshot.SeekCount},
			{desc("rebuffers", "Number of rebuffer episodes"), playback.Snapshot.RebufferCount},
			{desc("ad_sessions", "Sessions that played an ad"), playback.Snapshot.AdPlaybackCount},
		},
		ratios: []ratioMetric{
			{desc("abandoned_before_ready_ratio", "Share of foreground sessions abandoned before ready"), playback.Snapshot.AbandonedBeforeReadyRatio},
			{desc("ended_ratio", "Share of foreground sessions that ended"), playback.Snapshot.EndedRatio},
			{desc("wait_time_ratio", "Waiting time over play and wait time"), playback.Snapshot.WaitTimeRatio},
			{desc("join_time_ratio", "Join time over play and wait time"), playback.Snapshot.JoinTimeRatio},
			{desc("rebuffer_time_ratio", "Rebuffer time over play and wait time"), playback.Snapshot.RebufferTimeRatio},
			{desc("seek_time_ratio", "Seek time over play and wait time"), playback.Snapshot.SeekTimeRatio},
			{desc("rebuffer_rate_per_second", "Rebuffers per second of playing time"), playback.Snapshot.RebufferRate},
			{desc("mean_time_between_rebuffers_seconds", "Inverse of the rebuffer rate"), playback.Snapshot.MeanTimeBetweenRebuffers},
		},
		times: []timeMetric{
			{desc("mean_join_time_seconds", "Mean valid join time"), playback.Snapshot.MeanJoinTimeMs},
			{desc("max_rebuffer_time_seconds", "Longest single rebuffer episode"), playback.Snapshot.MaxRebufferTimeMs},
			{desc("mean_elapsed_time_seconds", "Mean elapsed time per session"), playback.Snapshot.MeanElapsedTimeMs},
			{desc("mean_wait_time_seconds", "Mean waiting time per foreground session"), playback.Snapshot.MeanWaitTimeMs},
		},
	}
}

// Describe implements prometheus.Collector.
func (c *SnapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.stateSeconds
	for _, m := range c.counts {
		ch <- m.desc
	}
	for _, m := range c.ratios {
		ch <- m.desc
	}
	for _, m := range c.times {
		ch <- m.desc
	}
}

// Collect implements prometheus.Collector.
func (c *SnapshotCollector) Collect(ch chan<- prometheus.Metric) {
	for _, state := range playback.AllStates() {
		ch <- prometheus.MustNewConstMetric(c.stateSeconds, prometheus.GaugeValue,
			msToSeconds(c.snapshot.DurationOf(state)), state.String())
	}
	for _, m := range c.counts {
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.GaugeValue, float64(m.value(c.snapshot)))
	}
	for _, m := range c.ratios {
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.GaugeValue, m.value(c.snapshot))
	}
	for _, m := range c.times {
		if ms, ok := m.value(c.snapshot).Get(); ok {
			ch <- prometheus.MustNewConstMetric(m.desc, prometheus.GaugeValue, msToSeconds(ms))
		}
	}
}

func msToSeconds(ms int64) float64 {
	return float64(ms) / 1000
}
