package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/matzehuels/synsetree/pkg/cache"
	"github.com/matzehuels/synsetree/pkg/dag"
	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/extract"
	"github.com/matzehuels/synsetree/pkg/lexicon"
)

var (
	// ErrEmptySelection is returned when user input resolves to no sense.
	ErrEmptySelection = errors.New("nothing matches the selection")

	// ErrNotReady is returned when no snapshot has been built yet.
	ErrNotReady = errors.New("snapshot not built")
)

// Classify maps an error from any stage onto a coded [apperrors.Error].
// Errors that already carry a code are returned unchanged; nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var coded *apperrors.Error
	if errors.As(err, &coded) {
		return err
	}

	var unknown *extract.UnknownNodeError
	switch {
	case errors.As(err, &unknown):
		return apperrors.Wrap(apperrors.ErrCodeUnknownNode, err, "unknown sense %q", unknown.Key)
	case errors.Is(err, lexicon.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrCodeUnknownNode, err, "unknown sense")
	case errors.Is(err, ErrEmptySelection):
		return apperrors.Wrap(apperrors.ErrCodeEmptySelection, err, "nothing matches the selection")
	case errors.Is(err, extract.ErrInvalidLimit):
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid node limit")
	case errors.Is(err, dag.ErrMalformedEdge):
		return apperrors.Wrap(apperrors.ErrCodeMalformedEdge, err, "lexicon contains a malformed hypernym edge")
	case errors.Is(err, dag.ErrGraphHasCycle):
		return apperrors.Wrap(apperrors.ErrCodeCycleDetected, err, "hypernym graph contains a cycle")
	case errors.Is(err, ErrNotReady):
		return apperrors.Wrap(apperrors.ErrCodeNotReady, err, "lexicon graph is not built yet")
	case errors.Is(err, fs.ErrNotExist):
		return apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "lexicon source not found")
	case errors.Is(err, cache.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrCodeNotFound, err, "lexicon source not found")
	case errors.Is(err, cache.ErrNetwork), cache.IsRetryable(err):
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "lexicon download failed")
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "operation timed out")
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, err, "internal error")
}

func stageErr(stage string, err error) error {
	return Classify(fmt.Errorf("%s: %w", stage, err))
}
