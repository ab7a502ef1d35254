package dataprocessing

import (
	"context"
	"log/slog"
	"runtime"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"cellwatch/pkg/contracts/domain"
)

const tracerName = "cellwatch/dataprocessing"

// Recorder receives parse statistics. infrastructure.ParseMetrics implements it.
type Recorder interface {
	DocumentRead(ctx context.Context, kind domain.Kind, ok bool)
	RecordsParsed(ctx context.Context, kind domain.Kind, total, anomalous int)
}

type nopRecorder struct{}

func (nopRecorder) DocumentRead(context.Context, domain.Kind, bool)       {}
func (nopRecorder) RecordsParsed(context.Context, domain.Kind, int, int) {}

// Aggregator parses a section kind across every document of a store
type Aggregator struct {
	store    DocumentStore
	workers  int
	recorder Recorder
	logger   *slog.Logger
}

// AggregatorOption configures an Aggregator
type AggregatorOption func(*Aggregator)

// WithWorkers bounds the number of documents parsed concurrently
func WithWorkers(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithRecorder sets the statistics sink
func WithRecorder(r Recorder) AggregatorOption {
	return func(a *Aggregator) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) AggregatorOption {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAggregator creates an aggregator over store
func NewAggregator(store DocumentStore, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		store:    store,
		workers:  runtime.GOMAXPROCS(0),
		recorder: nopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the document store the aggregator reads from
func (a *Aggregator) Store() DocumentStore {
	return a.store
}

// Documents lists the documents an aggregation would visit for filter.
// An empty filter selects every document; a filter naming a document
// that is not stored selects none.
func (a *Aggregator) Documents(ctx context.Context, filter string) []string {
	names, err := a.store.ListDocuments(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "document listing failed", slog.String("error", err.Error()))
		return nil
	}
	if filter == "" {
		return names
	}
	if slices.Contains(names, filter) {
		return []string{filter}
	}
	return nil
}

// Aggregate parses section over the selected documents and concatenates
// the results in document order. Documents are parsed in parallel; a
// cancelled context stops scheduling and returns what was parsed.
func Aggregate[R Record[R]](ctx context.Context, a *Aggregator, section *Section[R], filter string) []R {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "dataprocessing.Aggregate",
		trace.WithAttributes(
			attribute.String("section.kind", string(section.Kind())),
			attribute.String("document.filter", filter),
		))
	defer span.End()

	names := a.Documents(ctx, filter)
	slots := make([][]R, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, name := range names {
		if ctx.Err() != nil {
			a.logger.InfoContext(ctx, "aggregation cancelled",
				slog.String("kind", string(section.Kind())),
				slog.Int("scheduled", i),
				slog.Int("documents", len(names)))
			break
		}
		g.Go(func() error {
			slots[i] = parseDocument(gctx, a, section, name)
			return nil
		})
	}
	_ = g.Wait()

	var out []R
	for _, recs := range slots {
		out = append(out, recs...)
	}
	span.SetAttributes(
		attribute.Int("document.count", len(names)),
		attribute.Int("record.count", len(out)),
	)
	return out
}

func parseDocument[R Record[R]](ctx context.Context, a *Aggregator, section *Section[R], name string) []R {
	recs, err := section.parseStored(ctx, a.store, name)
	if err != nil {
		a.recorder.DocumentRead(ctx, section.Kind(), false)
		a.logger.WarnContext(ctx, "document read failed",
			slog.String("document", name),
			slog.String("kind", string(section.Kind())),
			slog.String("error", err.Error()))
		return nil
	}
	a.recorder.DocumentRead(ctx, section.Kind(), true)

	anomalous := 0
	for _, r := range recs {
		if r.Anomalous() {
			anomalous++
		}
	}
	a.recorder.RecordsParsed(ctx, section.Kind(), len(recs), anomalous)
	return recs
}
