// Package source reads the scan exports the pipeline is built from: the
// federal domain base list and the inspect, tls and analytics CSVs produced
// by domain-scan. It only parses; joining and filtering belong to the registry.
package source

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"pulse/pkg/logger"
	"pulse/pkg/serrors"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// DomainRow is one row of the base domain list.
type DomainRow struct {
	// Domain is already normalized with NormalizeHost.
	Domain string
	// Type is the registration type, e.g. "Federal Agency" or "City".
	Type   string
	Agency string
}

// Record is one data row of a scan CSV, keyed by the header row above it.
type Record struct {
	// Domain is the normalized first column.
	Domain string
	Fields map[string]string
}

// Get returns the named cell, or "" when the column is absent.
func (r Record) Get(name string) string {
	return r.Fields[name]
}

// Input is the fully materialized input of one run, in file order.
type Input struct {
	Domains   []DomainRow
	Inspect   []Record
	TLS       []Record
	Analytics []Record
}

// Paths locates the four input files.
type Paths struct {
	Domains   string
	Inspect   string
	TLS       string
	Analytics string
}

// Load reads all four inputs.
func Load(ctx context.Context, paths Paths) (Input, error) {
	var in Input

	err := readFile(paths.Domains, func(r io.Reader) (err error) {
		in.Domains, err = ReadDomains(r)

		return err
	})
	if err != nil {
		return Input{}, err
	}

	for _, f := range []struct {
		path string
		dst  *[]Record
	}{
		{paths.Inspect, &in.Inspect},
		{paths.TLS, &in.TLS},
		{paths.Analytics, &in.Analytics},
	} {
		err := readFile(f.path, func(r io.Reader) (err error) {
			*f.dst, err = ReadRecords(r)

			return err
		})
		if err != nil {
			return Input{}, err
		}
	}

	logger.Info(ctx, "inputs loaded",
		zap.Int("domains", len(in.Domains)),
		zap.Int("inspect", len(in.Inspect)),
		zap.Int("tls", len(in.TLS)),
		zap.Int("analytics", len(in.Analytics)))

	return in, nil
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := fn(f); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	return nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	return cr
}

// ReadDomains parses the base domain list. Columns are positional (domain,
// type, agency); any row whose first cell starts with "domain" is a header.
func ReadDomains(r io.Reader) ([]DomainRow, error) {
	cr := newReader(r)

	var rows []DomainRow
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "could not parse domain list")
		}
		if isHeader(row[0], true) {
			continue
		}
		if len(row) < 3 {
			line, _ := cr.FieldPos(0)

			return nil, serrors.With(serrors.ErrMalformedInput,
				"line %d: want domain, type and agency columns, got %d", line, len(row))
		}

		rows = append(rows, DomainRow{
			Domain: NormalizeHost(row[0]),
			Type:   row[1],
			Agency: row[2],
		})
	}

	return rows, nil
}

// ReadRecords parses a scan CSV. A row whose first cell is "domain" sets the
// column names for the rows that follow it.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := newReader(r)

	var (
		headers []string
		records []Record
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "could not parse scan csv")
		}
		if isHeader(row[0], false) {
			headers = row

			continue
		}

		line, _ := cr.FieldPos(0)
		if headers == nil {
			return nil, serrors.With(serrors.ErrMalformedInput, "line %d: data row before header", line)
		}
		if len(row) > len(headers) {
			return nil, serrors.With(serrors.ErrMalformedInput,
				"line %d: %d cells for %d columns", line, len(row), len(headers))
		}

		fields := make(map[string]string, len(row))
		for i, cell := range row {
			fields[headers[i]] = cell
		}
		records = append(records, Record{Domain: NormalizeHost(row[0]), Fields: fields})
	}

	return records, nil
}
