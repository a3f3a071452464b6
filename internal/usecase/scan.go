package usecase

import (
	"fmt"
	"strings"

	"stubgen/internal/adapter/analyzer"
	"stubgen/internal/domain"
	"stubgen/internal/port"
)

// ProgressFunc is called after each file is checked.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase finds source files that pass the test-class gate.
type ScanUseCase struct {
	walker port.FileWalker
	reader port.FileReader
}

// NewScanUseCase creates a new scan use case.
func NewScanUseCase(walker port.FileWalker, reader port.FileReader) *ScanUseCase {
	return &ScanUseCase{
		walker: walker,
		reader: reader,
	}
}

// ScanReport contains the results of a scan.
type ScanReport struct {
	Files       []domain.ScanResult
	TestClasses int
	Errors      []string
}

// Scan walks root and checks every matching file for the test-class marker.
func (u *ScanUseCase) Scan(root string, progress ProgressFunc) (*ScanReport, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	report := &ScanReport{}
	for i, file := range files {
		content, err := u.reader.ReadFile(file.Path)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
		} else {
			isTest := analyzer.ContainsTestClassMarker(content)
			report.Files = append(report.Files, domain.ScanResult{
				Path:      file.Path,
				TestClass: isTest,
				Lines:     strings.Count(content, "\n") + 1,
			})
			if isTest {
				report.TestClasses++
			}
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	return report, nil
}
