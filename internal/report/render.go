// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tomtom215/playstats/internal/models"
)

// Format selects how reports are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat is returned for a format other than table or json.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Renderer writes report models to an output stream.
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer creates a Renderer.
func NewRenderer(out io.Writer, format Format) *Renderer {
	return &Renderer{out: out, format: format}
}

// RenderSet writes a summarize or merge result.
func (r *Renderer) RenderSet(set models.QoEReportSet) error {
	if r.format == FormatJSON {
		return r.writeJSON(set)
	}

	reports := append(append([]models.QoEReport{}, set.Sessions...), set.Aggregate)

	if _, err := fmt.Fprintln(r.out, metricsTable(reports)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.out, stateTable(reports)); err != nil {
		return err
	}
	if len(set.Skipped) > 0 {
		if _, err := fmt.Fprintln(r.out, skippedTable(set.Skipped)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.out, "run %s: %d files, %d loaded, %d skipped\n",
		set.Metadata.RunID, set.Metadata.Files, set.Metadata.Loaded, set.Metadata.Skipped)
	return err
}

// RenderStatePoint writes a state-at answer.
func (r *Renderer) RenderStatePoint(p models.QoEStatePoint) error {
	if r.format == FormatJSON {
		return r.writeJSON(p)
	}
	_, err := fmt.Fprintln(r.out, renderTable(
		[]string{"Session", "Source", "At", "State"},
		[][]string{{p.SessionID, p.Source, fmt.Sprintf("%d ms", p.AtMs), p.State}},
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	return err
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type metricRow struct {
	name  string
	value func(models.QoEReport) string
}

var metricRows = []metricRow{
	{"Sessions", func(r models.QoEReport) string { return itoa(r.Sessions.Total) }},
	{"Foreground", func(r models.QoEReport) string { return itoa(r.Sessions.Foreground) }},
	{"Abandoned before ready", func(r models.QoEReport) string { return itoa(r.Sessions.AbandonedBeforeReady) }},
	{"Ended", func(r models.QoEReport) string { return itoa(r.Sessions.Ended) }},
	{"Background joins", func(r models.QoEReport) string { return itoa(r.Sessions.BackgroundJoining) }},
	{"Ad playbacks", func(r models.QoEReport) string { return itoa(r.Sessions.AdPlayback) }},
	{"Valid joins", func(r models.QoEReport) string { return itoa(r.Sessions.ValidJoins) }},
	{"Pauses", func(r models.QoEReport) string { return itoa(r.Events.Pauses) }},
	{"Pauses while buffering", func(r models.QoEReport) string { return itoa(r.Events.PausesWhileBuffering) }},
	{"Seeks", func(r models.QoEReport) string { return itoa(r.Events.Seeks) }},
	{"Rebuffers", func(r models.QoEReport) string { return itoa(r.Events.Rebuffers) }},
	{"Play time", func(r models.QoEReport) string { return formatMs(r.TimeTotals.Play) }},
	{"Wait time", func(r models.QoEReport) string { return formatMs(r.TimeTotals.Wait) }},
	{"Elapsed time", func(r models.QoEReport) string { return formatMs(r.TimeTotals.Elapsed) }},
	{"Mean join time", func(r models.QoEReport) string { return formatOptMs(r.TimeMeans.Join) }},
	{"Mean play time", func(r models.QoEReport) string { return formatOptMs(r.TimeMeans.Play) }},
	{"Mean rebuffer time", func(r models.QoEReport) string { return formatOptMs(r.TimeMeans.Rebuffer) }},
	{"Mean single rebuffer", func(r models.QoEReport) string { return formatOptMs(r.TimeMeans.SingleRebuffer) }},
	{"Max rebuffer time", func(r models.QoEReport) string { return formatOptMs(r.TimeTotals.MaxRebuffer) }},
	{"Mean seek time", func(r models.QoEReport) string { return formatOptMs(r.TimeMeans.Seek) }},
	{"Mean single seek", func(r models.QoEReport) string { return formatOptMs(r.TimeMeans.SingleSeek) }},
	{"Abandoned ratio", func(r models.QoEReport) string { return formatPercent(r.Ratios.AbandonedBeforeReady) }},
	{"Ended ratio", func(r models.QoEReport) string { return formatPercent(r.Ratios.Ended) }},
	{"Wait time ratio", func(r models.QoEReport) string { return formatPercent(r.Ratios.WaitTime) }},
	{"Join time ratio", func(r models.QoEReport) string { return formatPercent(r.Ratios.JoinTime) }},
	{"Rebuffer time ratio", func(r models.QoEReport) string { return formatPercent(r.Ratios.RebufferTime) }},
	{"Seek time ratio", func(r models.QoEReport) string { return formatPercent(r.Ratios.SeekTime) }},
	{"Rebuffer rate", func(r models.QoEReport) string { return fmt.Sprintf("%.4f/s", r.Ratios.RebufferRate) }},
	{"Time between rebuffers", func(r models.QoEReport) string { return formatOptSeconds(r.Ratios.MeanTimeBetweenRebuffersSec) }},
}

func metricsTable(reports []models.QoEReport) string {
	headers := make([]string, 0, len(reports)+1)
	aligns := make([]columnAlignment, 0, len(reports)+1)
	headers = append(headers, "Metric")
	aligns = append(aligns, alignLeft)
	for _, r := range reports {
		headers = append(headers, r.Label)
		aligns = append(aligns, alignRight)
	}

	rows := make([][]string, 0, len(metricRows))
	for _, m := range metricRows {
		row := make([]string, 0, len(reports)+1)
		row = append(row, m.name)
		for _, r := range reports {
			row = append(row, m.value(r))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func stateTable(reports []models.QoEReport) string {
	headers := []string{"State"}
	aligns := []columnAlignment{alignLeft}
	for _, r := range reports {
		headers = append(headers, r.Label)
		aligns = append(aligns, alignRight)
	}

	if len(reports) == 0 {
		return renderTable(headers, nil, aligns)
	}
	rows := make([][]string, 0, len(reports[0].StateDurations))
	for i, sd := range reports[0].StateDurations {
		row := []string{sd.State}
		for _, r := range reports {
			row = append(row, formatMs(r.StateDurations[i].DurationMs))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func skippedTable(skipped []models.QoESkippedFile) string {
	rows := make([][]string, 0, len(skipped))
	for _, s := range skipped {
		rows = append(rows, []string{s.Source, s.Error})
	}
	return renderTable([]string{"Skipped file", "Error"}, rows, []columnAlignment{alignLeft, alignLeft})
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	// Headers carry session IDs, so keep their case.
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault

	tw := table.NewWriter()
	tw.SetStyle(style)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}

func formatMs(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).String()
}

func formatOptMs(ms *int64) string {
	if ms == nil {
		return "-"
	}
	return formatMs(*ms)
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func formatOptSeconds(sec *float64) string {
	if sec == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fs", *sec)
}
