package service

import (
	"context"

	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
	"github.com/truemediaorg/videolink/config"
	"github.com/truemediaorg/videolink/extractor"
	"github.com/truemediaorg/videolink/fetcher"
	"github.com/truemediaorg/videolink/model"

	log "github.com/sirupsen/logrus"
)

type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

type MediaExtractor interface {
	Extract(html string) (extractor.Result, error)
}

// UpstreamError means the video page itself could not be retrieved.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Resolver struct {
	fetcher   PageFetcher
	extractor MediaExtractor
}

func NewResolver(fetcher PageFetcher, extractor MediaExtractor) *Resolver {
	return &Resolver{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

func NewResolverFromConfig(cfg config.Config) *Resolver {
	client := fetcher.NewClient(cfg.UserAgent)
	log.WithField("userAgent", cfg.UserAgent).Debug("page fetcher initialized")
	return NewResolver(client, extractor.New())
}

// Resolve fetches the page once and extracts a direct media URL from it.
// Fetch failures come back as *UpstreamError; an unrecognizable page as extractor.ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, req model.ResolutionRequest) (string, error) {
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = cuid.New()
	}
	logger := log.WithField("requestID", requestID).WithField("url", req.URL)
	if _, videoID, err := model.DeconstructVideoURL(req.URL); err == nil {
		logger = logger.WithField("videoID", videoID)
	}

	logger.Debug("fetching page")
	html, err := r.fetcher.FetchPage(ctx, req.URL)
	if err != nil {
		logger.WithError(err).Warn("unable to fetch page")
		return "", &UpstreamError{Err: err}
	}

	result, err := r.extractor.Extract(html)
	if err != nil {
		if errors.Is(err, extractor.ErrNotFound) {
			logger.WithField("pageBytes", len(html)).Warn("no media URL found in page")
			return "", err
		}
		return "", errors.Wrap(err, "extracting media URL")
	}

	logger.WithField("stage", result.Stage).WithField("source", result.Source).Info("resolved media URL")
	return result.URL, nil
}
