// Package slog provides logging decorators for swdoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/jkowalczyk/swdoc"
)

// Ensure LoggingParser implements swdoc.Parser at compile time.
var _ swdoc.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with per-page logging. Missing page titles
// are expected on redirect stubs and logged at warning level; everything
// else a parse produces is logged at debug level with timing.
type LoggingParser struct {
	next   swdoc.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next swdoc.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error) {
	begin := time.Now()
	rec, err := p.next.Parse(content, key, urlPrefix)
	if err != nil {
		if swdoc.ErrorCode(err) == swdoc.ENOTFOUND {
			p.logger.Warn("page not parseable",
				"type", key.FullTypeName(),
				"member", key.MemberName,
				"error", swdoc.ErrorMessage(err),
			)
		} else {
			p.logger.Error("parse failed",
				"type", key.FullTypeName(),
				"member", key.MemberName,
				"error", err,
			)
		}
		return nil, err
	}

	p.logger.Debug("page parsed",
		"kind", rec.Kind(),
		"name", rec.RecordName(),
		"duration", time.Since(begin),
	)
	return rec, nil
}
