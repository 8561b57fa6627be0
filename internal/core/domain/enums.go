package domain

import (
	"fmt"
	"strings"
)

// ReviewStatus is the triage verdict attached to a report.
type ReviewStatus int

// Review statuses.
const (
	ReviewStatusUnreviewed    ReviewStatus = 0
	ReviewStatusConfirmed     ReviewStatus = 1
	ReviewStatusFalsePositive ReviewStatus = 2
	ReviewStatusIntentional   ReviewStatus = 3
)

var reviewStatusNames = map[ReviewStatus]string{
	ReviewStatusUnreviewed:    "UNREVIEWED",
	ReviewStatusConfirmed:     "CONFIRMED",
	ReviewStatusFalsePositive: "FALSE_POSITIVE",
	ReviewStatusIntentional:   "INTENTIONAL",
}

func (s ReviewStatus) String() string { return enumName(reviewStatusNames, s, "ReviewStatus") }

// ParseReviewStatus converts a case-insensitive name ("confirmed",
// "false-positive") to a ReviewStatus.
func ParseReviewStatus(name string) (ReviewStatus, error) {
	return parseEnum(reviewStatusNames, name, "review status")
}

// DetectionStatus tracks a report across consecutive stores of a run.
type DetectionStatus int

// Detection statuses.
const (
	DetectionStatusNew         DetectionStatus = 0
	DetectionStatusResolved    DetectionStatus = 1
	DetectionStatusUnresolved  DetectionStatus = 2
	DetectionStatusReopened    DetectionStatus = 3
	DetectionStatusOff         DetectionStatus = 4
	DetectionStatusUnavailable DetectionStatus = 5
)

var detectionStatusNames = map[DetectionStatus]string{
	DetectionStatusNew:         "NEW",
	DetectionStatusResolved:    "RESOLVED",
	DetectionStatusUnresolved:  "UNRESOLVED",
	DetectionStatusReopened:    "REOPENED",
	DetectionStatusOff:         "OFF",
	DetectionStatusUnavailable: "UNAVAILABLE",
}

func (s DetectionStatus) String() string {
	return enumName(detectionStatusNames, s, "DetectionStatus")
}

// ParseDetectionStatus converts a case-insensitive name to a DetectionStatus.
func ParseDetectionStatus(name string) (DetectionStatus, error) {
	return parseEnum(detectionStatusNames, name, "detection status")
}

// Severity of a checker report.
type Severity int

// Severities. Values are spaced so the server can insert levels.
const (
	SeverityUnspecified Severity = 0
	SeverityStyle       Severity = 10
	SeverityLow         Severity = 20
	SeverityMedium      Severity = 30
	SeverityHigh        Severity = 40
	SeverityCritical    Severity = 50
)

var severityNames = map[Severity]string{
	SeverityUnspecified: "UNSPECIFIED",
	SeverityStyle:       "STYLE",
	SeverityLow:         "LOW",
	SeverityMedium:      "MEDIUM",
	SeverityHigh:        "HIGH",
	SeverityCritical:    "CRITICAL",
}

func (s Severity) String() string { return enumName(severityNames, s, "Severity") }

// ParseSeverity converts a case-insensitive name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	return parseEnum(severityNames, name, "severity")
}

// DiffType selects which side of a run comparison to return.
type DiffType int

// Diff types.
const (
	DiffTypeNew        DiffType = 0
	DiffTypeResolved   DiffType = 1
	DiffTypeUnresolved DiffType = 2
)

var diffTypeNames = map[DiffType]string{
	DiffTypeNew:        "NEW",
	DiffTypeResolved:   "RESOLVED",
	DiffTypeUnresolved: "UNRESOLVED",
}

func (d DiffType) String() string { return enumName(diffTypeNames, d, "DiffType") }

// ParseDiffType converts a case-insensitive name to a DiffType.
func ParseDiffType(name string) (DiffType, error) {
	return parseEnum(diffTypeNames, name, "diff type")
}

// Encoding of file content in replies.
type Encoding int

// Encodings.
const (
	EncodingDefault Encoding = 0
	EncodingBase64  Encoding = 1
)

// SortType is the column results are sorted by.
type SortType int

// Sort types.
const (
	SortTypeFilename        SortType = 0
	SortTypeCheckerName     SortType = 1
	SortTypeSeverity        SortType = 2
	SortTypeReviewStatus    SortType = 3
	SortTypeDetectionStatus SortType = 4
	SortTypeBugPathLength   SortType = 5
)

// Order is a sort direction.
type Order int

// Sort orders.
const (
	OrderAsc  Order = 0
	OrderDesc Order = 1
)

// RunSortType is the column runs are sorted by.
type RunSortType int

// Run sort types.
const (
	RunSortTypeName       RunSortType = 0
	RunSortTypeUnresolved RunSortType = 1
	RunSortTypeDate       RunSortType = 2
	RunSortTypeDuration   RunSortType = 3
	RunSortTypeCCVersion  RunSortType = 4
)

// StoreLimitKind names a server side size limit on uploads.
type StoreLimitKind int

// Store limit kinds.
const (
	StoreLimitFailureZipSize          StoreLimitKind = 0
	StoreLimitCompilationDatabaseSize StoreLimitKind = 1
)

func enumName[T ~int](names map[T]string, v T, typeName string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", typeName, int(v))
}

func parseEnum[T ~int](names map[T]string, name, what string) (T, error) {
	normalised := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for v, n := range names {
		if n == normalised {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, what, name)
}
