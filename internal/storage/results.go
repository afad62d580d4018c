// Package storage persists per-match analysis results as rotating JSONL
// files: hot (being written), warm (closed, awaiting aggregation), and cold
// (gzip archives).
package storage

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"timeline-analyzer/internal/analysis"
)

const (
	// Rotation triggers
	MaxResultsPerFile = 500
	MaxFileAge        = 1 * time.Hour
)

// ResultStore writes analysis results to rotating JSONL files.
type ResultStore struct {
	mu sync.Mutex

	hotDir  string
	warmDir string
	coldDir string

	currentFile   *os.File
	currentWriter *bufio.Writer
	currentPath   string
	resultCount   int
	fileOpenedAt  time.Time
}

// NewResultStore creates the hot/warm/cold layout under baseDir and opens the
// first output file.
func NewResultStore(baseDir string) (*ResultStore, error) {
	s := &ResultStore{
		hotDir:  filepath.Join(baseDir, "hot"),
		warmDir: filepath.Join(baseDir, "warm"),
		coldDir: filepath.Join(baseDir, "cold"),
	}

	for _, dir := range []string{s.hotDir, s.warmDir, s.coldDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if err := s.rotate(); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteResult appends one analysis result as a JSON line and rotates the file
// when it hits the size or age trigger.
func (s *ResultStore) WriteResult(result *analysis.MatchAnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result %s: %w", result.MatchID, err)
	}

	if _, err := s.currentWriter.Write(data); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if err := s.currentWriter.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}

	s.resultCount++
	if err := s.currentWriter.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	if s.shouldRotate() {
		return s.rotate()
	}
	return nil
}

func (s *ResultStore) shouldRotate() bool {
	if s.currentFile == nil {
		return true
	}
	if s.resultCount >= MaxResultsPerFile {
		return true
	}
	return time.Since(s.fileOpenedAt) >= MaxFileAge
}

// rotate closes the current file into warm storage and opens a fresh one.
func (s *ResultStore) rotate() error {
	if s.currentFile != nil {
		if err := s.currentWriter.Flush(); err != nil {
			return fmt.Errorf("flush before rotation: %w", err)
		}
		if err := s.currentFile.Close(); err != nil {
			return fmt.Errorf("close file: %w", err)
		}

		warmPath := filepath.Join(s.warmDir, filepath.Base(s.currentPath))
		if err := os.Rename(s.currentPath, warmPath); err != nil {
			return fmt.Errorf("move to warm storage: %w", err)
		}
		log.Printf("[Storage] Moved %s to warm storage (%d results)", filepath.Base(s.currentPath), s.resultCount)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	s.currentPath = filepath.Join(s.hotDir, fmt.Sprintf("analysis_%s.jsonl", timestamp))

	file, err := os.Create(s.currentPath)
	if err != nil {
		return fmt.Errorf("create new file: %w", err)
	}

	s.currentFile = file
	s.currentWriter = bufio.NewWriterSize(file, 64*1024)
	s.resultCount = 0
	s.fileOpenedAt = time.Now()
	return nil
}

// Close flushes and closes the current file, moving it to warm storage when it
// holds data and deleting it otherwise.
func (s *ResultStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentFile == nil {
		return nil
	}
	if err := s.currentWriter.Flush(); err != nil {
		return err
	}
	if err := s.currentFile.Close(); err != nil {
		return err
	}

	if s.resultCount > 0 {
		warmPath := filepath.Join(s.warmDir, filepath.Base(s.currentPath))
		if err := os.Rename(s.currentPath, warmPath); err != nil {
			return err
		}
	} else {
		os.Remove(s.currentPath)
	}

	s.currentFile = nil
	return nil
}

// WarmDir returns where closed result files accumulate.
func (s *ResultStore) WarmDir() string { return s.warmDir }

// CompressToCold gzips a warm file into cold storage and removes the original.
func CompressToCold(warmPath, coldDir string) error {
	src, err := os.Open(warmPath)
	if err != nil {
		return err
	}
	defer src.Close()

	coldPath := filepath.Join(coldDir, filepath.Base(warmPath)+".gz")
	dst, err := os.Create(coldPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	gzWriter := gzip.NewWriter(dst)
	if _, err := io.Copy(gzWriter, src); err != nil {
		return err
	}
	if err := gzWriter.Close(); err != nil {
		return err
	}

	return os.Remove(warmPath)
}

// LoadResults reads every JSONL result file under dir, transparently handling
// gzip archives. Files are read in name order so output is deterministic.
func LoadResults(dir string) ([]analysis.MatchAnalysisResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read results directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".jsonl") || strings.HasSuffix(name, ".jsonl.gz") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var results []analysis.MatchAnalysisResult
	for _, name := range names {
		fileResults, err := loadResultFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		results = append(results, fileResults...)
	}
	return results, nil
}

func loadResultFile(path string) ([]analysis.MatchAnalysisResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	var results []analysis.MatchAnalysisResult
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var result analysis.MatchAnalysisResult
		if err := json.Unmarshal(line, &result); err != nil {
			return nil, fmt.Errorf("parse line in %s: %w", path, err)
		}
		results = append(results, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return results, nil
}
