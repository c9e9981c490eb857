package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/sheet"
)

// Service runs the whole import pipeline: decode, detect schema, classify
// tokens, transform rows. One Preview call is one self-contained session;
// nothing is stored and no state survives the call.
type Service struct {
	classifier Classifier
}

func NewService(classifier Classifier) *Service {
	return &Service{classifier: classifier}
}

// Preview converts a tabular export into normalized expenses plus whatever
// categories had to be minted along the way. It fails only when the file
// itself cannot be decoded; every row-level anomaly is skipped or defaulted.
func (s *Service) Preview(ctx context.Context, r io.Reader, filename string, existing []category.Category) (Result, error) {
	sh, err := sheet.Decode(r, filename)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", filename, err)
	}

	if len(sh.Rows) == 0 {
		return Result{}, nil
	}

	sc := detectSchema(sh)
	tokens := extractTokens(sh, sc)

	var cls Classification

	if len(tokens) > 0 && s.classifier != nil {
		if len(tokens) > MaxClassifyTokens {
			tokens = tokens[:MaxClassifyTokens]
		}

		cls = s.classifier.Classify(ctx, tokens, existing)
		if cls.Failed {
			slog.Warn("classifier unavailable, using local fallbacks", "tokens", len(tokens))
		}
	}

	res := newResolver(existing, cls)
	now := time.Now()

	var result Result

	for _, row := range sh.Rows {
		switch sc.mode {
		case ModeMatrix:
			result.Expenses = append(result.Expenses, transformMatrix(row, sc, res, now)...)
		default:
			if exp, ok := transformList(row, sc, res, now); ok {
				result.Expenses = append(result.Expenses, exp)
			}
		}
	}

	result.NewCategories = res.created

	return result, nil
}
