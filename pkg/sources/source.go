package sources

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/matzehuels/readmefeed/pkg/errors"
)

// Source produces the content of one region.
type Source interface {
	// Kind returns the registry name of the source, e.g. "apod".
	Kind() string

	// Render fetches and formats the region content.
	Render(ctx context.Context) (string, error)
}

// Func adapts a plain function to the [Source] interface.
type Func struct {
	Name string
	Fn   func(ctx context.Context) (string, error)
}

// Kind returns f.Name.
func (f Func) Kind() string { return f.Name }

// Render calls f.Fn.
func (f Func) Render(ctx context.Context) (string, error) { return f.Fn(ctx) }

// Unavailable returns the standard placeholder shown in place of a source
// that could not be rendered.
func Unavailable(title string) string {
	return "_" + title + " unavailable._"
}

// Guard runs src with a bounded timeout and never fails: on error, timeout
// or panic it returns fallback (or [Unavailable] for the source kind when
// fallback is empty) together with the cause. A nil error means content is
// fresh.
//
// Guard returns as soon as the deadline passes even if src ignores its
// context; the abandoned call finishes in the background.
func Guard(ctx context.Context, src Source, timeout time.Duration, fallback string) (string, error) {
	if fallback == "" {
		fallback = Unavailable(src.Kind())
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		content string
		err     error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: errors.New(errors.ErrCodeInternal, "%s: panic: %v", src.Kind(), r)}
			}
		}()
		content, err := src.Render(ctx)
		done <- result{content: content, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return fallback, classify(src.Kind(), res.err)
		}
		return res.content, nil
	case <-ctx.Done():
		return fallback, classify(src.Kind(), ctx.Err())
	}
}

// classify turns a render failure into a coded error.
func classify(kind string, err error) error {
	if errors.GetCode(err) != "" {
		return err
	}
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "%s timed out", kind)
	case stderrors.Is(err, context.Canceled):
		return errors.Wrap(errors.ErrCodeTimeout, err, "%s cancelled", kind)
	default:
		return errors.Wrap(errors.ErrCodeSourceUnavailable, err, "%s unavailable", kind)
	}
}

// Errorf returns a SOURCE_UNAVAILABLE error for upstream data that cannot be
// rendered, such as an empty or malformed payload.
func Errorf(format string, args ...any) error {
	return errors.New(errors.ErrCodeSourceUnavailable, format, args...)
}
