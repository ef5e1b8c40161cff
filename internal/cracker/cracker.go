package cracker

import (
	"context"
	"errors"
	"hashhush/internal/config"
	"hashhush/pkg/dictionary"
	"hashhush/pkg/digest"
	"hashhush/pkg/domain"
	"hashhush/pkg/fingerprint"
	"hashhush/pkg/logger"
	"hashhush/pkg/metrics"
	"hashhush/pkg/serrors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options configure how dictionaries are scanned and digests generated.
type Options struct {
	// Workers is the number of goroutines scanning disjoint ranges of one
	// dictionary. Values below 2 scan sequentially.
	Workers int
	// ProgressInterval logs progress every N evaluated candidates; zero disables it.
	ProgressInterval int
	// BcryptCost is the work factor for generated bcrypt digests.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:          cfg.Cracker.Workers,
		ProgressInterval: cfg.Cracker.ProgressInterval,
		BcryptCost:       cfg.Cracker.BcryptCost,
	}
}

// cracker is the concrete implementation of the Cracker interface.
type cracker struct {
	options Options
	metrics *metrics.Instruments
	tracer  trace.Tracer
}

// New creates a Cracker. A nil instruments value records no metrics.
func New(options Options, instruments *metrics.Instruments) Cracker {
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &cracker{
		options: options,
		metrics: instruments,
		tracer:  otel.Tracer("hashhush/internal/cracker"),
	}
}

func (c *cracker) Detect(ctx context.Context, hash string) (*domain.Detection, error) {
	if hash == "" {
		c.metrics.Operation(ctx, "detect", "", metrics.OutcomeError)

		return nil, serrors.With(serrors.ErrMissingInput, "hash is required")
	}

	fp := fingerprint.Identify(hash)
	c.metrics.Operation(ctx, "detect", fp.Algorithm.String(), metrics.OutcomeOK)

	return &domain.Detection{
		Hash:        hash,
		Fingerprint: fp,
		Candidates:  fingerprint.Candidates(hash),
	}, nil
}

func (c *cracker) Generate(ctx context.Context, text string, algorithm string) (*domain.Generation, error) {
	if text == "" || algorithm == "" {
		c.metrics.Operation(ctx, "generate", "", metrics.OutcomeError)

		return nil, serrors.With(serrors.ErrMissingInput, "text and algorithm are required")
	}

	alg, ok := domain.ParseAlgorithm(algorithm)
	if !ok {
		c.metrics.Operation(ctx, "generate", "", metrics.OutcomeError)

		return nil, serrors.With(serrors.ErrUnsupportedAlgorithm, "unsupported hash algorithm %q", algorithm)
	}

	comparer, err := digest.ForWithOptions(alg, c.digestOptions())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	hash, err := comparer.Compute(text)
	if err != nil {
		c.metrics.Operation(ctx, "generate", alg.String(), metrics.OutcomeError)

		var se *serrors.Error
		if errors.As(err, &se) {
			return nil, err
		}

		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not generate %s digest", alg)
	}
	c.metrics.Operation(ctx, "generate", alg.String(), metrics.OutcomeOK)

	return &domain.Generation{OriginalText: text, Algorithm: alg, Hash: hash}, nil
}

// Crack validates the algorithm once, then scans the candidates in order.
// Only a missing hash or an invalid or undetectable algorithm abort the
// call; candidates that fail to evaluate are logged and skipped.
func (c *cracker) Crack(ctx context.Context, hash string, algorithm string,
	candidates []string) (*domain.CrackResult, error) {
	if hash == "" {
		c.metrics.Operation(ctx, "crack", "", metrics.OutcomeError)

		return nil, serrors.With(serrors.ErrMissingInput, "hash is required")
	}

	alg, err := resolveAlgorithm(hash, algorithm)
	if err != nil {
		c.metrics.Operation(ctx, "crack", "", metrics.OutcomeError)

		return nil, err
	}

	comparer, err := digest.ForWithOptions(alg, c.digestOptions())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if len(candidates) == 0 {
		candidates = dictionary.Default()
	}

	ctx, span := c.tracer.Start(ctx, "cracker.Crack", trace.WithAttributes(
		attribute.String("algorithm", alg.String()),
		attribute.Int("candidates", len(candidates)),
	))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.String("algorithm", alg.String()))
	logger.Info(ctx, "cracking hash", zap.String("hash", hash), zap.Int("candidates", len(candidates)))

	start := time.Now()
	report := Scan(ctx, comparer, hash, candidates, ScanOptions{
		Workers:          c.options.Workers,
		ProgressInterval: c.options.ProgressInterval,
	})
	took := time.Since(start)

	span.SetAttributes(
		attribute.Int("evaluated", report.Evaluated),
		attribute.Int("failed", report.Failed),
		attribute.Bool("found", report.State == StateFound),
	)
	span.SetStatus(codes.Ok, "")

	if report.State == StateFound {
		logger.Info(ctx, "hash cracked", zap.Int("index", report.Index), zap.Duration("took", took))
		c.metrics.Scan(ctx, alg.String(), metrics.OutcomeFound, report.Evaluated, report.Failed, took)
		c.metrics.Operation(ctx, "crack", alg.String(), metrics.OutcomeFound)
		res := domain.Found(report.Password, alg)

		return &res, nil
	}

	logger.Info(ctx, "hash not found", zap.Int("evaluated", report.Evaluated), zap.Duration("took", took))
	c.metrics.Scan(ctx, alg.String(), metrics.OutcomeExhausted, report.Evaluated, report.Failed, took)
	c.metrics.Operation(ctx, "crack", alg.String(), metrics.OutcomeExhausted)
	res := domain.Exhausted(alg)

	return &res, nil
}

func (c *cracker) digestOptions() digest.Options {
	return digest.Options{BcryptCost: c.options.BcryptCost}
}

// resolveAlgorithm parses the requested algorithm, or detects it from hash
// when none was requested. Cracking never proceeds with AlgorithmUnknown.
func resolveAlgorithm(hash, algorithm string) (domain.Algorithm, error) {
	if algorithm == "" {
		fp := fingerprint.Identify(hash)
		if fp.Algorithm == domain.AlgorithmUnknown {
			return "", serrors.With(serrors.ErrAlgorithmUndetectable, "unable to detect hash algorithm")
		}

		return fp.Algorithm, nil
	}

	alg, ok := domain.ParseAlgorithm(algorithm)
	if !ok {
		return "", serrors.With(serrors.ErrUnsupportedAlgorithm, "unsupported hash algorithm %q", algorithm)
	}

	return alg, nil
}
