package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs    *csv.Writer
	samples *csv.Writer
	rf, sf  *os.File
}

func NewCSV(runsPath, samplesPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(samplesPath)
	if err != nil {
		rf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	sw := csv.NewWriter(sf)

	if err := rw.Write([]string{"run_id", "created_at", "s0", "mu", "sigma", "horizon", "steps", "seed", "terminal"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"run_id", "idx", "t", "value"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, sw, rf, sf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	seed := ""
	if r.Seed != nil {
		seed = strconv.FormatUint(*r.Seed, 10)
	}

	err := j.runs.Write([]string{
		r.RunID,
		r.CreatedAt.Format(time.RFC3339),
		f(r.S0),
		f(r.Mu),
		f(r.Sigma),
		f(r.Horizon),
		strconv.Itoa(r.Steps),
		seed,
		f(r.Terminal),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordPath(runID string, times, values []float64) error {
	if len(times) != len(values) {
		return fmt.Errorf("record path: %d times vs %d values", len(times), len(values))
	}

	for i := range times {
		err := j.samples.Write([]string{
			runID,
			strconv.Itoa(i),
			f(times[i]),
			f(values[i]),
		})
		if err != nil {
			return err
		}
	}

	j.samples.Flush()
	return j.samples.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.samples.Flush()
	if err := j.samples.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.sf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
