package media

import (
	"context"

	"clipforge/internal/logger"
	"clipforge/internal/models"
)

// Probe extracts intrinsic metadata from a media source. Implementations
// live with the ingestion surface (ffprobe, browser metadata, ...); the
// core only needs the result.
type Probe interface {
	Probe(ctx context.Context, url string, kind models.ClipKind) (Metadata, error)
}

// Metadata is what a probe reports back.
type Metadata struct {
	Duration  float64
	Thumbnail string
}

// Resolver runs one-shot metadata probes off the interaction path. The
// result re-enters the core through the apply callback, which the owner
// is expected to serialize with its other state transitions.
type Resolver struct {
	probe Probe
	log   *logger.Logger
}

func NewResolver(probe Probe, log *logger.Logger) *Resolver {
	return &Resolver{probe: probe, log: log}
}

// Resolve probes the clip's source on a fresh goroutine and hands the
// metadata to apply. Probe failures are logged and dropped: the clip
// simply keeps its provisional values.
func (r *Resolver) Resolve(ctx context.Context, clipID, url string, kind models.ClipKind, apply func(clipID string, meta Metadata)) {
	if r.probe == nil {
		return
	}
	go func() {
		meta, err := r.probe.Probe(ctx, url, kind)
		if err != nil {
			r.log.Warn("metadata probe failed", "clip_id", clipID, "url", url, "error", err)
			return
		}
		apply(clipID, meta)
	}()
}
