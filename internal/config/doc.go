// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package config loads playstats settings with koanf v2.

Sources are layered, later ones winning:

 1. built-in defaults (defaultConfig)
 2. a YAML file: the --config flag, else CONFIG_PATH, else the first of
    playstats.yaml, playstats.yml, /etc/playstats/config.yaml, /etc/playstats/config.yml
 3. environment variables

# Environment Variables

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: console)
  - LOG_CALLER: include caller file:line (default: false)

Input:
  - PLAYSTATS_INPUT_CONCURRENCY: files decoded in parallel, 0 = NumCPU (default: 0)
  - PLAYSTATS_INPUT_STRICT: abort on the first bad file (default: false)

Output:
  - PLAYSTATS_OUTPUT_FORMAT: auto, table or json (default: auto)
  - PLAYSTATS_METRICS_TEXTFILE: write Prometheus text exposition to this path
  - PLAYSTATS_METRICS_NAMESPACE: metric name prefix (default: playstats)

# Example File

	logging:
	  level: debug
	input:
	  concurrency: 8
	  strict: true
	output:
	  format: json
	  metrics_textfile: /var/lib/node_exporter/playstats.prom

The loaded Config is validated with go-playground/validator tags; failures
name the offending field, e.g. "format must be one of: auto table json".
*/
package config
