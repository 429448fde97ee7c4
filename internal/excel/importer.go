package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath            string // Path to the Excel or CSV file
	GreekColumn         string // Column with the Greek headword
	EnglishColumn       string // Column with the translation
	PronunciationColumn string // Column with the transliteration, optional
	WordTypeColumn      string // Column with the part of speech, optional
	CategoryColumn      string // Column with the category, optional
	DifficultyColumn    string // Column with the difficulty, optional
	SheetName           string // Name of the sheet to import, empty means the first sheet
	StartRow            int    // The row to start importing from (1-based index)
	DefaultCategory     string // Category for rows that carry none
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		GreekColumn:         "A",
		EnglishColumn:       "B",
		PronunciationColumn: "C",
		WordTypeColumn:      "D",
		CategoryColumn:      "E",
		DifficultyColumn:    "F",
		StartRow:            2, // By default, start from the second row (skip header)
		DefaultCategory:     "general",
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Updated        int      `json:"updated"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}

// Importer loads vocabulary items from spreadsheets
type Importer struct {
	repo *database.VocabularyRepository
	now  func() time.Time
}

// NewImporter creates an importer writing through q
func NewImporter(q sqlx.ExtContext) *Importer {
	return &Importer{
		repo: database.NewVocabularyRepository(q),
		now:  time.Now,
	}
}

// Import reads an Excel or CSV file, chosen by extension, and upserts its rows.
// Items are matched on (greek, category); unchanged rows are skipped.
func (imp *Importer) Import(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(config.FilePath)) {
	case ".csv":
		rows, err = readCSV(config.FilePath)
	case ".xlsx", ".xlsm":
		rows, err = readExcel(config.FilePath, config.SheetName)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(config.FilePath))
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	currentCategory := config.DefaultCategory

	for i, row := range rows {
		rowNum := i + 1
		// Skip header rows
		if rowNum < config.StartRow || isBlank(row) {
			continue
		}

		// A row with only the first cell filled starts a new category block
		if isCategoryHeader(row) {
			currentCategory = strings.TrimSpace(row[0])
			continue
		}

		result.TotalProcessed++

		item, err := parseRow(row, config, currentCategory)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if err := imp.save(ctx, item, result); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
	}

	return result, nil
}

func (imp *Importer) save(ctx context.Context, item *models.VocabularyItem, result *ImportResult) error {
	existing, err := imp.repo.GetByGreekAndCategory(ctx, item.Greek, item.Category)
	if errors.Is(err, database.ErrVocabularyItemNotFound) {
		item.CreatedAt = imp.now().UTC().Truncate(time.Second)
		if err := imp.repo.Create(ctx, item); err != nil {
			return err
		}
		result.Created++
		return nil
	}
	if err != nil {
		return err
	}

	if sameContent(existing, item) {
		result.Skipped++
		return nil
	}

	existing.English = item.English
	existing.Pronunciation = item.Pronunciation
	existing.WordType = item.WordType
	existing.Difficulty = item.Difficulty
	if err := imp.repo.Update(ctx, existing); err != nil {
		return err
	}
	result.Updated++
	return nil
}

func parseRow(row []string, config ImportConfig, currentCategory string) (*models.VocabularyItem, error) {
	greek := cleanWord(cell(row, config.GreekColumn))
	english := strings.TrimSpace(cell(row, config.EnglishColumn))

	if greek == "" {
		return nil, fmt.Errorf("greek word cannot be empty")
	}
	if english == "" {
		return nil, fmt.Errorf("translation cannot be empty")
	}

	category := strings.TrimSpace(cell(row, config.CategoryColumn))
	if category == "" {
		category = currentCategory
	}

	item := &models.VocabularyItem{
		Greek:      greek,
		English:    english,
		WordType:   strings.ToLower(strings.TrimSpace(cell(row, config.WordTypeColumn))),
		Category:   category,
		Difficulty: parseIntOrDefault(cell(row, config.DifficultyColumn), 1, 5, 3),
	}
	if p := strings.Trim(strings.TrimSpace(cell(row, config.PronunciationColumn)), "[]"); p != "" {
		item.Pronunciation = &p
	}
	return item, nil
}

func sameContent(a, b *models.VocabularyItem) bool {
	if a.English != b.English || a.WordType != b.WordType || a.Difficulty != b.Difficulty {
		return false
	}
	if (a.Pronunciation == nil) != (b.Pronunciation == nil) {
		return false
	}
	return a.Pronunciation == nil || *a.Pronunciation == *b.Pronunciation
}

// readExcel returns every row of the sheet
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

// readCSV returns every record of the file
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isCategoryHeader(row []string) bool {
	if strings.TrimSpace(row[0]) == "" {
		return false
	}
	for _, c := range row[1:] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cleanWord drops trailing notes in parentheses, e.g. "λέω (είπα)" becomes "λέω"
func cleanWord(word string) string {
	if i := strings.Index(word, "("); i > 0 {
		return strings.TrimSpace(word[:i])
	}
	return strings.TrimSpace(word)
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

// Helper function to parse integer with default value, clamped to [min, max]
func parseIntOrDefault(s string, min, max, defaultVal int) int {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultVal
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
