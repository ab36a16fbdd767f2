package sweep

import (
	"os"

	"github.com/gocarina/gocsv"
)

// ResultRow is one critical-surface evaluation in the output file.
type ResultRow struct {
	Name        string  `csv:"name"`
	Temperature float64 `csv:"temperature"` // K
	Bmax        float64 `csv:"bmax"`        // T
	Strain      float64 `csv:"strain"`      // -
	Jcrit       float64 `csv:"jcrit"`       // A/m2
	Bcrit       float64 `csv:"bcrit"`       // T
	Tcrit       float64 `csv:"tcrit"`       // K
}

// Recorder collects the evaluation results of a sweep.
type Recorder struct {
	rows []ResultRow
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{rows: make([]ResultRow, 0, capacity)}
}

func (r *Recorder) Add(row ResultRow) {
	r.rows = append(r.rows, row)
}

func (r *Recorder) Rows() []ResultRow {
	return r.rows
}

// Save writes the recorded rows to a CSV file.
func (r *Recorder) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&r.rows, file)
}
