// Package services holds the application use cases of the quiz.
package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ersonp/archiquiz/internal/domain/entities"
	"github.com/ersonp/archiquiz/internal/domain/quiz"
	"github.com/ersonp/archiquiz/internal/infrastructure/parsers"
)

// RecordError represents an error for a specific catalog record.
type RecordError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Message string // Human-readable error message
}

func (e RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// CatalogError aggregates every invalid record of a catalog.
type CatalogError struct {
	Errors []RecordError
}

func (e *CatalogError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, re := range e.Errors {
		msgs[i] = re.Error()
	}
	return fmt.Sprintf("invalid catalog (%d errors): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// CatalogService validates parsed records and turns them into a quiz catalog.
type CatalogService struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(logger *zap.Logger) *CatalogService {
	v := validator.New()
	// Report the catalog key, not the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &CatalogService{validate: v, logger: logger}
}

// Load validates every record and enriches the valid catalog. Any invalid
// record aborts the load with a *CatalogError listing all of them.
func (s *CatalogService) Load(rawBuildings []parsers.RawBuilding) (*quiz.Catalog, error) {
	buildings, recordErrors := s.validateRecords(rawBuildings)
	if len(recordErrors) > 0 {
		return nil, &CatalogError{Errors: recordErrors}
	}

	catalog, err := quiz.NewCatalog(buildings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("catalog loaded",
		zap.Int("buildings", catalog.Len()),
		zap.Int("answers", countAnswers(catalog)),
	)
	return catalog, nil
}

// validateRecords checks required fields and converts valid records.
func (s *CatalogService) validateRecords(rawBuildings []parsers.RawBuilding) ([]entities.Building, []RecordError) {
	buildings := make([]entities.Building, 0, len(rawBuildings))
	var recordErrors []RecordError

	for i := range rawBuildings {
		raw := &rawBuildings[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		if errs := s.validateRecord(raw, lineNum); len(errs) > 0 {
			recordErrors = append(recordErrors, errs...)
			continue
		}
		buildings = append(buildings, raw.ToBuilding())
	}

	return buildings, recordErrors
}

func (s *CatalogService) validateRecord(raw *parsers.RawBuilding, lineNum int) []RecordError {
	err := s.validate.Struct(raw)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []RecordError{{Line: lineNum, Message: err.Error()}}
	}

	out := make([]RecordError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, RecordError{
			Line:    lineNum,
			Field:   fe.Field(),
			Message: "missing required field: " + fe.Field(),
		})
	}
	return out
}

func countAnswers(c *quiz.Catalog) int {
	n := 0
	for _, b := range c.All() {
		n += len(b.Name.Answers) + len(b.Author.Answers) + len(b.Classification.Answers)
	}
	return n
}
