package document

import (
	"context"

	"github.com/dshills/doccore/internal/engine/buffer"
)

// triggerSyntaxChange parses the current revision in the background.
// The worker only sees a snapshot: the text, the syntax to parse from and
// the revision mirror. Its result is submitted only if the buffer is still
// at the revision it parsed; otherwise it is dropped without a trace.
func (d *Document) triggerSyntaxChange(delta *buffer.Delta) {
	path, ok := d.content.Path()
	if !ok || d.syntax == nil || d.sink == nil {
		return
	}

	rev := d.buf.Rev()
	text := d.buf.Text()
	mirror := d.buf.AtomicRev()
	base := d.syntax
	var change *buffer.Delta
	if delta != nil {
		dc := *delta
		change = &dc
	}

	sink, target := d.sink, d.id
	parse, logger, wg := d.parse, d.logger, d.workers

	logger.Debug("dispatching parse of rev %d", rev)
	wg.Add(1)
	d.spawn(func() {
		defer wg.Done()

		if mirror.Load() != rev {
			logger.Debug("rev %d stale before parse", rev)
			return
		}

		parsed, err := parse(context.Background(), base, rev, text, change)
		if err != nil {
			logger.Warn("parse of rev %d failed: %v", rev, err)
			return
		}

		if mirror.Load() != rev {
			logger.Debug("rev %d stale after parse, result dropped", rev)
			return
		}
		if err := sink.Submit(target, SyntaxUpdated{Path: path, Rev: rev, Syntax: parsed}); err != nil {
			logger.Debug("delivering rev %d: %v", rev, err)
		}
	})
}
