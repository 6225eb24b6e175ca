package collecting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"panelstat/pkg/config"
	"panelstat/pkg/metrics"
	"panelstat/pkg/probing"
)

const (
	closedStream      = "closed\n"
	formatLabelPrefix = "F:"
	rateLabelPrefix   = "R:"

	streamFieldLimit = 6
	formatFieldIndex = 1
	rateFieldIndex   = 4
)

// StreamFieldParser extracts the sample format and rate values from a
// hw_params report. Either value may be empty when it was not found, in which
// case err wraps ErrPartialData.
type StreamFieldParser func(content string) (format, rate string, err error)

// Audio reads the live hw_params report of one PCM substream. It owns the
// last labels it produced and hands them back whenever a read yields nothing
// newer.
type Audio struct {
	path    string
	timeout time.Duration
	logger  *slog.Logger
	parse   StreamFieldParser
	labels  metrics.AudioLabels
}

func NewAudio(path string, timeout time.Duration, logger *slog.Logger) *Audio {
	return &Audio{
		path:    path,
		timeout: timeout,
		logger:  logger,
		parse:   PositionalStreamFields,
		labels:  metrics.DefaultAudioLabels(),
	}
}

func (c *Audio) Name() string { return "Audio" }

// Labels returns the current labels without reading the source.
func (c *Audio) Labels() metrics.AudioLabels { return c.labels }

// ReadAudioStreamParameters refreshes and returns the format and rate labels.
func (c *Audio) ReadAudioStreamParameters(ctx context.Context) metrics.AudioLabels {
	data, err := probing.WithTimeout(ctx, c.timeout, func() ([]byte, error) {
		return probing.File(c.path, config.AudioReadLimit)
	})
	switch {
	case errors.Is(err, probing.ErrOpen):
		c.logger.Warn("audio card unavailable", "error", sourceError(c.path, err))
		c.labels = metrics.AudioLabels{Format: metrics.CardFailFormat, Rate: metrics.CardFailRate}
		return c.labels
	case err != nil:
		c.logger.Warn("failed to read audio stream parameters", "error", sourceError(c.path, err))
		return c.labels
	}

	content := string(data)
	if content == closedStream {
		return c.labels
	}

	format, rate, err := c.parse(content)
	if err != nil {
		c.logger.Debug("incomplete audio stream parameters", "path", c.path, "error", err)
	}
	if format != "" {
		c.labels.Format = formatLabelPrefix + format
	}
	if rate != "" {
		c.labels.Rate = rateLabelPrefix + rate
	}
	return c.labels
}

// PositionalStreamFields picks the format and rate by line position, not by
// field name: the value of line 1 is the format and the value of line 4 is the
// rate. Only the first six non-empty lines are considered, and each line is
// split on spaces into a name and a value.
//
// The layout is what current kernels print for hw_params, but it is not
// matched against the names, so a kernel that reorders or drops lines yields
// the wrong values.
func PositionalStreamFields(content string) (format, rate string, err error) {
	fields := splitTokens(content, '\n')
	if len(fields) > streamFieldLimit {
		fields = fields[:streamFieldLimit]
	}

	value := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		pair := splitTokens(fields[i], ' ')
		if len(pair) < 2 {
			return ""
		}
		return pair[1]
	}

	format, rate = value(formatFieldIndex), value(rateFieldIndex)
	if format == "" || rate == "" {
		err = fmt.Errorf("%w: %d of %d fields present", ErrPartialData, len(fields), streamFieldLimit)
	}
	return format, rate, err
}

// splitTokens splits s on sep and drops empty tokens.
func splitTokens(s string, sep rune) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == sep })
}
