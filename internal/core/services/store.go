package services

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/reportctl/internal/core/domain"
	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
	"github.com/custodia-labs/reportctl/internal/logger"
)

// MaxStoreZipSize is the largest archive massStoreRun is sent.
const MaxStoreZipSize int64 = 100 * 1024 * 1024

const contentHashesFile = "content_hashes.json"

// Ensure StoreService implements the interface.
var _ driving.StoreService = (*StoreService)(nil)

// StoreService packs report directories and uploads them with massStoreRun.
type StoreService struct {
	storage       driving.StorageAPI
	history       driven.StoreHistory
	serverURL     string
	clientVersion string
	maxZipSize    int64
	now           func() time.Time
}

// NewStoreService creates a store service. history is optional; without it
// stores are not recorded locally.
func NewStoreService(
	storage driving.StorageAPI,
	history driven.StoreHistory,
	serverURL string,
	clientVersion string,
) *StoreService {
	return &StoreService{
		storage:       storage,
		history:       history,
		serverURL:     serverURL,
		clientVersion: clientVersion,
		maxZipSize:    MaxStoreZipSize,
		now:           time.Now,
	}
}

// reportFile is a file of the report directory with its content hash.
type reportFile struct {
	path string
	rel  string
	hash string
}

// Store uploads the report directory in req.
func (s *StoreService) Store(ctx context.Context, req driving.StoreRequest) (*driving.StoreResult, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("store: %w", domain.ErrNotImplemented)
	}
	if req.RunName == "" {
		return nil, fmt.Errorf("store: %w: run name is required", domain.ErrInvalidInput)
	}

	logger.Section("Store")

	files, err := hashReportDir(req.ReportDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("hashed %d files in %s", len(files), req.ReportDir)

	hashes := make([]string, 0, len(files))
	for _, f := range files {
		hashes = append(hashes, f.hash)
	}
	missing, err := s.storage.GetMissingContentHashes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("get missing content hashes: %w", err)
	}
	logger.Debug("server is missing %d of %d files", len(missing), len(files))

	wanted := make(map[string]bool, len(missing))
	for _, h := range missing {
		wanted[h] = true
	}
	archive, uploaded, err := buildStoreZip(files, func(hash string) bool { return wanted[hash] })
	if err != nil {
		return nil, err
	}
	zipSize := int64(len(archive))
	if zipSize > s.maxZipSize {
		return nil, fmt.Errorf("store: %w: archive is %d bytes, limit is %d",
			domain.ErrInvalidInput, zipSize, s.maxZipSize)
	}

	runID, err := s.storage.MassStoreRun(ctx,
		req.RunName,
		req.Tag,
		s.clientVersion,
		base64.StdEncoding.EncodeToString(archive),
		req.Force,
		req.TrimPathPrefixes,
		req.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("mass store run: %w", err)
	}
	logger.Info("stored run %q as %d (%d bytes)", req.RunName, runID, zipSize)

	result := &driving.StoreResult{
		RunID:         runID,
		FileCount:     len(files),
		UploadedCount: uploaded,
		ZipSize:       zipSize,
	}

	if s.history != nil {
		rec := domain.StoreRecord{
			ID:            uuid.New().String(),
			ServerURL:     s.serverURL,
			RunName:       req.RunName,
			RunID:         runID,
			Tag:           req.Tag,
			FileCount:     result.FileCount,
			UploadedCount: result.UploadedCount,
			ZipSize:       zipSize,
			StoredAt:      s.now(),
		}
		if err := s.history.Record(ctx, rec); err != nil {
			// Not fatal: the run is already stored.
			logger.Warn("record store history: %v", err)
		}
	}

	if req.StatisticsDir != "" {
		sent, err := s.storeStatistics(ctx, req.RunName, req.StatisticsDir)
		if err != nil {
			return result, fmt.Errorf("store analysis statistics: %w", err)
		}
		result.StatisticsSent = sent
	}

	return result, nil
}

// History lists previous stores.
func (s *StoreService) History(ctx context.Context, limit int) ([]domain.StoreRecord, error) {
	if s.history == nil {
		return nil, fmt.Errorf("store history: %w", domain.ErrNotImplemented)
	}
	return s.history.List(ctx, limit)
}

func (s *StoreService) storeStatistics(ctx context.Context, runName, dir string) (bool, error) {
	allowed, err := s.storage.AllowsStoringAnalysisStatistics(ctx)
	if err != nil {
		return false, err
	}
	if !allowed {
		logger.Info("server does not accept analysis statistics")
		return false, nil
	}

	limits, err := s.storage.GetAnalysisStatisticsLimits(ctx)
	if err != nil {
		return false, err
	}

	files, err := hashReportDir(dir)
	if err != nil {
		return false, err
	}
	archive, _, err := buildStoreZip(files, func(string) bool { return true })
	if err != nil {
		return false, err
	}

	if limit, ok := limits[domain.StoreLimitFailureZipSize]; ok && limit > 0 && int64(len(archive)) > limit {
		logger.Warn("statistics archive is %d bytes, server limit is %d; skipping", len(archive), limit)
		return false, nil
	}

	return s.storage.StoreAnalysisStatistics(ctx, runName, base64.StdEncoding.EncodeToString(archive))
}

// hashReportDir lists the regular files under dir with their SHA-256 hashes,
// sorted by relative path.
func hashReportDir(dir string) ([]reportFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("report directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	var files []reportFile
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}
		files = append(files, reportFile{path: path, rel: filepath.ToSlash(rel), hash: hash})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk report directory: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no report files in %s", domain.ErrInvalidInput, dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].rel < files[j].rel })
	return files, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// buildStoreZip packs the files selected by include under reports/, plus a
// content hash index of every file.
func buildStoreZip(files []reportFile, include func(hash string) bool) ([]byte, int, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	index := make(map[string]string, len(files))
	packed := 0
	for _, f := range files {
		index[f.rel] = f.hash
		if !include(f.hash) {
			continue
		}
		if err := addZipFile(zw, "reports/"+f.rel, f.path); err != nil {
			return nil, 0, err
		}
		packed++
	}

	w, err := zw.Create(contentHashesFile)
	if err != nil {
		return nil, 0, fmt.Errorf("create zip entry: %w", err)
	}
	if err := json.NewEncoder(w).Encode(index); err != nil {
		return nil, 0, fmt.Errorf("write content hashes: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), packed, nil
}

func addZipFile(zw *zip.Writer, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create zip entry: %w", err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("write zip entry %s: %w", name, err)
	}
	return nil
}
