package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	factsRepo "carelink/database/repository/facts"
	"carelink/models"

	"go.uber.org/zap"
)

// Category keyword sets for narrowing a fact lookup. No match leaves
// the category empty, which broadens the search.
var categoryKeywords = map[string][]string{
	models.CategoryFood: {
		"food", "eat", "ate", "meal", "breakfast", "lunch", "dinner",
		"diet", "nutrition", "snack",
	},
	models.CategoryVitals: {
		"vitals", "heart rate", "blood pressure", "bp", "oxygen",
		"pulse", "steps", "step count", "saturation",
	},
	models.CategoryMedicalRecord: {
		"medical", "record", "diagnosis", "condition", "medication",
		"prescription", "doctor's note", "history",
	},
}

// categoryProbeOrder keeps the broadened-vs-narrowed decision
// deterministic when a query mentions several categories.
var categoryProbeOrder = []string{
	models.CategoryFood,
	models.CategoryVitals,
	models.CategoryMedicalRecord,
}

// Retriever answers free-text health questions against the fact store:
// it infers a date and a category from the query, then asks the store
// for the single best match on that exact date.
type Retriever struct {
	Repo factsRepo.Repository
	Log  *zap.Logger
	Now  func() time.Time
}

// NewRetriever wires a retriever over the given fact repository.
func NewRetriever(repo factsRepo.Repository, log *zap.Logger) *Retriever {
	return &Retriever{Repo: repo, Log: log, Now: time.Now}
}

// InferCategory returns the data category a query is asking about, or
// "" when nothing matches.
func InferCategory(query string) string {
	lower := strings.ToLower(query)
	for _, category := range categoryProbeOrder {
		for _, k := range categoryKeywords[category] {
			if strings.Contains(lower, k) {
				return category
			}
		}
	}
	return ""
}

// NotFoundMessage is the user-visible sentinel for an exact-date miss.
// A query that resolves to a date with no ingested record legitimately
// gets this; it is a successful outcome, not a failure.
func NotFoundMessage(date string) string {
	return fmt.Sprintf("No data found for %s.", date)
}

// Retrieve resolves the query's date and category and returns the best
// matching fact text, or the not-found sentinel. Store failures
// propagate as errors so the transport can distinguish them from "no
// data".
func (r *Retriever) Retrieve(ctx context.Context, userID, query string) (string, error) {
	date := ResolveDate(query, r.Now())
	category := InferCategory(query)

	text, err := r.Repo.Query(ctx, userID, date, category)
	if errors.Is(err, factsRepo.ErrNotFound) {
		r.Log.Debug("fact lookup miss",
			zap.String("userID", userID),
			zap.String("date", date),
			zap.String("category", category))
		return NotFoundMessage(date), nil
	}
	if err != nil {
		return "", fmt.Errorf("fact store query for %s: %w", userID, err)
	}
	return text, nil
}

// RetrieveCategory fetches one category for an already-resolved date.
// A miss returns "" rather than the sentinel; callers assembling a
// summary block skip empty categories.
func (r *Retriever) RetrieveCategory(ctx context.Context, userID, date, category string) (string, error) {
	text, err := r.Repo.Query(ctx, userID, date, category)
	if errors.Is(err, factsRepo.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("fact store query for %s/%s: %w", userID, category, err)
	}
	return text, nil
}

// ResolveQueryDate exposes the layered date extraction for callers that
// need the date itself (the daily summary block).
func (r *Retriever) ResolveQueryDate(query string) string {
	return ResolveDate(query, r.Now())
}
