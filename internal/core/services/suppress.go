package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
	"github.com/custodia-labs/reportctl/internal/logger"
)

const suppressSeparator = "||"

// ParseSuppressFile reads suppress file lines. Three layouts are accepted:
//
//	hash||file||message||status
//	hash||file||message
//	hash||message
//
// A missing or unknown status means false positive. Blank lines are skipped.
func ParseSuppressFile(r io.Reader) ([]domain.SuppressEntry, error) {
	var entries []domain.SuppressEntry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, suppressSeparator)
		var entry domain.SuppressEntry
		var status string
		switch len(fields) {
		case 4:
			entry = domain.SuppressEntry{BugHash: fields[0], FileName: fields[1], Message: fields[2]}
			status = fields[3]
		case 3:
			entry = domain.SuppressEntry{BugHash: fields[0], FileName: fields[1], Message: fields[2]}
		case 2:
			entry = domain.SuppressEntry{BugHash: fields[0], Message: fields[1]}
		default:
			return nil, fmt.Errorf("%w: suppress file line %d: expected 2 to 4 fields, got %d",
				domain.ErrInvalidInput, lineNo, len(fields))
		}
		if entry.BugHash == "" {
			return nil, fmt.Errorf("%w: suppress file line %d: empty bug hash", domain.ErrInvalidInput, lineNo)
		}
		entry.Status = suppressStatus(status)
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read suppress file: %w", err)
	}
	return entries, nil
}

func suppressStatus(s string) domain.ReviewStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed":
		return domain.ReviewStatusConfirmed
	case "intentional":
		return domain.ReviewStatusIntentional
	default:
		return domain.ReviewStatusFalsePositive
	}
}

// Ensure SuppressService implements the interface.
var _ driving.SuppressService = (*SuppressService)(nil)

// SuppressService applies suppress file entries as review statuses.
type SuppressService struct {
	review driving.ReviewService
}

// NewSuppressService creates a suppress service.
func NewSuppressService(review driving.ReviewService) *SuppressService {
	return &SuppressService{review: review}
}

// Import changes the review status of every entry by bug hash. Failures of
// single entries are collected; authentication and transport failures abort
// the import since every following call would fail the same way.
func (s *SuppressService) Import(
	ctx context.Context, entries []domain.SuppressEntry,
) (*driving.SuppressImportResult, error) {
	if s.review == nil {
		return nil, fmt.Errorf("suppress import: %w", domain.ErrNotImplemented)
	}

	result := &driving.SuppressImportResult{Failures: make(map[string]error)}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		ok, err := s.review.ChangeReviewStatusByHash(ctx, e.BugHash, e.Status, e.Message)
		switch {
		case err != nil && (domain.IsAuthentication(err) || domain.IsTransport(err)):
			return result, fmt.Errorf("suppress %s: %w", e.BugHash, err)
		case err != nil:
			logger.Warn("suppress %s: %v", e.BugHash, err)
			result.Failures[e.BugHash] = err
		case !ok:
			logger.Warn("suppress %s: server did not apply review status", e.BugHash)
			result.Failures[e.BugHash] = fmt.Errorf("%w: no report with hash %s", domain.ErrNotFound, e.BugHash)
		default:
			result.Applied++
		}
	}
	return result, nil
}
