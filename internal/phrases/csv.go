// Package phrases loads phrase collections and samples drill rounds from them.
package phrases

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/verte-zerg/phrasey/internal/model"
)

// CSVStore keeps a two-column phrase file in memory.
type CSVStore struct {
	records []model.Phrase
	rnd     *rand.Rand
}

// LoadCSV reads (original, translation) rows from the provided file path.
func LoadCSV(path string) (*CSVStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only phrase file.
			_ = cerr
		}
	}()
	records, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewCSVStore(records), nil
}

// NewCSVStore wraps already loaded phrases.
func NewCSVStore(records []model.Phrase) *CSVStore {
	return &CSVStore{
		records: records,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ReadCSV parses phrase rows. Rows without exactly two columns and rows with an
// empty side are skipped.
func ReadCSV(r io.Reader) ([]model.Phrase, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []model.Phrase
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) != 2 {
			continue
		}
		original := strings.TrimSpace(row[0])
		translation := strings.TrimSpace(row[1])
		if original == "" || translation == "" {
			continue
		}
		records = append(records, model.Phrase{Original: original, Translation: translation})
	}
	return records, nil
}

// Len returns the number of loaded phrases.
func (s *CSVStore) Len() int {
	return len(s.records)
}

// Sample returns up to n phrases in random order.
func (s *CSVStore) Sample(_ context.Context, n int) ([]model.Phrase, error) {
	if n <= 0 || len(s.records) == 0 {
		return nil, nil
	}
	if n > len(s.records) {
		n = len(s.records)
	}
	perm := s.rnd.Perm(len(s.records))
	out := make([]model.Phrase, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, s.records[idx])
	}
	return out, nil
}

// Phrases returns a copy of every loaded phrase in file order.
func (s *CSVStore) Phrases() []model.Phrase {
	out := make([]model.Phrase, len(s.records))
	copy(out, s.records)
	return out
}
