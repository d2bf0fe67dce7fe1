package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# FreqSum configuration
version: "1.0"

categories:
  # Comma-separated category specifications used when none are passed
  # on the command line. Syntax per entry:
  #   2-10   inclusive range      <5  strict upper bound
  #   >10    strict lower bound   7   exact number
  #   apple  case-insensitive text
  # Anything containing "-" is read as a range, so negative numbers
  # cannot be written as categories.
  default: ""
  # Preset id used when neither --categories nor default is set
  preset: ""
  # Directories scanned for preset YAML files
  directories:
    - ./presets
  # Load the built-in presets (log-levels, grades, http-status, yes-no)
  enable_defaults: true

input:
  # plain: whitespace/comma separated values
  # log:   parse each line as a log entry and use one field as the token
  source: plain
  log_format: auto   # auto, json, logfmt, text
  log_field: level   # level, message
  max_lines: 100000

output:
  default_format: text   # text, json, markdown, csv
  color_mode: auto       # auto, always, never
  verbose: false
  export_path: analysis_report.md
  chart_width: 30

ui:
  enabled: true
  theme: default         # default, high-contrast, minimal

watch:
  debounce: 200ms
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
categories:
  default: ""
output:
  default_format: text
ui:
  theme: default
`
}
