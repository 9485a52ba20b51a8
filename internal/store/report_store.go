package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"numlab/internal/digest"
	"numlab/internal/domain"
)

const reportExt = ".json"

var (
	// ErrReportNotFound is returned when no report exists for an ID.
	ErrReportNotFound = errors.New("report not found")
	// ErrCorruptReport is returned when a report's payload no longer matches
	// its fingerprint.
	ErrCorruptReport = errors.New("report payload does not match fingerprint")
)

// ReportFileStore keeps one JSON file per report under dir.
type ReportFileStore struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

// ReportOption configures a ReportFileStore.
type ReportOption func(*ReportFileStore)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) ReportOption {
	return func(s *ReportFileStore) { s.now = now }
}

// NewReportFileStore returns a ReportFileStore rooted at dir. The directory
// is created on first save.
func NewReportFileStore(dir string, opts ...ReportOption) *ReportFileStore {
	s := &ReportFileStore{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveReport serialises payload, fingerprints it and writes a new report.
func (s *ReportFileStore) SaveReport(kind domain.ReportKind, payload any) (domain.Report, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.Report{}, fmt.Errorf("encode %s report: %w", kind, err)
	}
	r := domain.Report{
		ID:          domain.ReportID(uuid.NewString()),
		Kind:        kind,
		CreatedAt:   s.now().UTC(),
		Fingerprint: domain.Fingerprint(digest.Fingerprint(raw)),
		Payload:     raw,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return domain.Report{}, err
	}
	if err := encodeFile(s.path(r.ID), r, 0o600); err != nil {
		return domain.Report{}, fmt.Errorf("write report %s: %w", r.ID, err)
	}
	return r, nil
}

// LoadReport reads the report and verifies its fingerprint.
func (s *ReportFileStore) LoadReport(id domain.ReportID) (domain.Report, error) {
	if _, err := uuid.Parse(id.String()); err != nil {
		return domain.Report{}, fmt.Errorf("%w: %q", ErrReportNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Report
	if err := decodeFile(s.path(id), &r); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Report{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}
		return domain.Report{}, fmt.Errorf("read report %s: %w", id, err)
	}

	// The file is indented on disk; the fingerprint covers the compact form.
	var compact bytes.Buffer
	if err := json.Compact(&compact, r.Payload); err != nil {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrCorruptReport, id)
	}
	if digest.Fingerprint(compact.Bytes()) != r.Fingerprint.String() {
		return domain.Report{}, fmt.Errorf("%w: %s", ErrCorruptReport, id)
	}
	r.Payload = compact.Bytes()
	return r, nil
}

// ListReports returns every stored report, newest first.
func (s *ReportFileStore) ListReports() ([]domain.ReportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.ReportSummary, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), reportExt) {
			continue
		}
		var sum domain.ReportSummary
		if err := decodeFile(filepath.Join(s.dir, e.Name()), &sum); err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ReportFileStore) path(id domain.ReportID) string {
	return filepath.Join(s.dir, id.String()+reportExt)
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
