package domain

// RunData describes one analysis run stored on the server.
type RunData struct {
	RunID                int64                     `json:"runId"`
	RunDate              string                    `json:"runDate"`
	Name                 string                    `json:"name"`
	Duration             int64                     `json:"duration"`
	ResultCount          int64                     `json:"resultCount"`
	RunCmd               string                    `json:"runCmd,omitempty"`
	DetectionStatusCount map[DetectionStatus]int64 `json:"detectionStatusCount,omitempty"`
	VersionTag           string                    `json:"versionTag,omitempty"`
	CodeCheckerVersion   string                    `json:"codeCheckerVersion,omitempty"`
	Description          string                    `json:"description,omitempty"`
}

// RunHistoryData describes one store event of a run.
type RunHistoryData struct {
	ID                 int64  `json:"id"`
	RunID              int64  `json:"runId"`
	RunName            string `json:"runName"`
	VersionTag         string `json:"versionTag,omitempty"`
	User               string `json:"user"`
	Time               string `json:"time"`
	CodeCheckerVersion string `json:"codeCheckerVersion,omitempty"`
	Description        string `json:"description,omitempty"`
}

// RunFilter narrows getRunData and removeRun.
type RunFilter struct {
	IDs        []int64  `json:"ids,omitempty"`
	Names      []string `json:"names,omitempty"`
	ExactMatch bool     `json:"exactMatch,omitempty"`
	BeforeTime int64    `json:"beforeTime,omitempty"`
	AfterTime  int64    `json:"afterTime,omitempty"`
	BeforeRun  string   `json:"beforeRun,omitempty"`
	AfterRun   string   `json:"afterRun,omitempty"`
}

// RunHistoryFilter narrows getRunHistory.
type RunHistoryFilter struct {
	TagNames []string `json:"tagNames,omitempty"`
	TagIDs   []int64  `json:"tagIds,omitempty"`
}

// RunSortMode orders run listings.
type RunSortMode struct {
	Type RunSortType `json:"type"`
	Ord  Order       `json:"ord"`
}

// ReviewData is the review status of a report with its audit fields.
type ReviewData struct {
	Status  ReviewStatus `json:"status"`
	Comment string       `json:"comment,omitempty"`
	Author  string       `json:"author,omitempty"`
	Date    string       `json:"date,omitempty"`
}

// ReportData is one checker finding.
type ReportData struct {
	RunID           int64           `json:"runId"`
	CheckerID       string          `json:"checkerId"`
	BugHash         string          `json:"bugHash"`
	CheckedFile     string          `json:"checkedFile"`
	CheckerMsg      string          `json:"checkerMsg"`
	ReportID        int64           `json:"reportId"`
	FileID          int64           `json:"fileId"`
	Line            int64           `json:"line"`
	Column          int64           `json:"column"`
	Severity        Severity        `json:"severity"`
	ReviewData      ReviewData      `json:"reviewData"`
	DetectionStatus DetectionStatus `json:"detectionStatus"`
	DetectedAt      string          `json:"detectedAt,omitempty"`
	FixedAt         string          `json:"fixedAt,omitempty"`
	BugPathLength   int64           `json:"bugPathLength"`
	Details         *ReportDetails  `json:"details,omitempty"`
}

// BugPathPos is a source range on the bug path.
type BugPathPos struct {
	StartLine int64  `json:"startLine"`
	StartCol  int64  `json:"startCol"`
	EndLine   int64  `json:"endLine"`
	EndCol    int64  `json:"endCol"`
	FileID    int64  `json:"fileId"`
	FilePath  string `json:"filePath"`
}

// BugPathEvent is one annotated step on the bug path.
type BugPathEvent struct {
	StartLine int64  `json:"startLine"`
	StartCol  int64  `json:"startCol"`
	EndLine   int64  `json:"endLine"`
	EndCol    int64  `json:"endCol"`
	Msg       string `json:"msg"`
	FileID    int64  `json:"fileId"`
	FilePath  string `json:"filePath"`
}

// ReportDetails holds the bug path of a report.
type ReportDetails struct {
	PathEvents      []BugPathEvent `json:"pathEvents"`
	ExecutionPath   []BugPathPos   `json:"executionPath"`
	MacroExpansions []BugPathEvent `json:"macroExpansions,omitempty"`
	Notes           []BugPathEvent `json:"notes,omitempty"`
	Comments        []string       `json:"comments,omitempty"`
}

// ReportFilter narrows result queries. Empty fields do not filter.
type ReportFilter struct {
	Filepath        []string          `json:"filepath,omitempty"`
	CheckerMsg      []string          `json:"checkerMsg,omitempty"`
	CheckerName     []string          `json:"checkerName,omitempty"`
	ReportHash      []string          `json:"reportHash,omitempty"`
	Severity        []Severity        `json:"severity,omitempty"`
	ReviewStatus    []ReviewStatus    `json:"reviewStatus,omitempty"`
	DetectionStatus []DetectionStatus `json:"detectionStatus,omitempty"`
	RunHistoryTag   []string          `json:"runHistoryTag,omitempty"`
	RunName         []string          `json:"runName,omitempty"`
	RunTag          []int64           `json:"runTag,omitempty"`
	ComponentNames  []string          `json:"componentNames,omitempty"`
	IsUnique        bool              `json:"isUnique,omitempty"`
}

// CompareData turns a result query into a diff against other runs.
type CompareData struct {
	RunIDs   []int64  `json:"runIds"`
	DiffType DiffType `json:"diffType"`
	RunTag   []int64  `json:"runTag,omitempty"`
}

// SortMode orders result listings.
type SortMode struct {
	Type SortType `json:"type"`
	Ord  Order    `json:"ord"`
}

// ReportDataTypeCount is a per checker and severity count of one run.
type ReportDataTypeCount struct {
	CheckerID string   `json:"checkerId"`
	Severity  Severity `json:"severity"`
	Count     int64    `json:"count"`
}

// CheckerCount is a per checker count across runs.
type CheckerCount struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Count    int64    `json:"count"`
}

// SuppressBugData is a suppression recorded for a run.
type SuppressBugData struct {
	BugHash  string       `json:"bugHash"`
	FileName string       `json:"fileName"`
	Comment  string       `json:"comment"`
	Status   ReviewStatus `json:"status"`
}

// SourceFileData is a file known to the server.
type SourceFileData struct {
	FileID      int64  `json:"fileId"`
	FilePath    string `json:"filePath"`
	FileContent string `json:"fileContent,omitempty"`
}

// LinesInFilesRequested asks for specific lines of one file.
type LinesInFilesRequested struct {
	FileID int64   `json:"fileId"`
	Lines  []int64 `json:"lines"`
}

// SourceComponentData is a named set of path include/exclude rules.
type SourceComponentData struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}
