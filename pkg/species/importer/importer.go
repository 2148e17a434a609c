// Package importer reads tree species catalogs from spreadsheets.
// Header names are matched loosely, so "Common Name", "common_name" and
// "commonname" all resolve to the same column.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"msitumum/entities"
)

// Load picks the reader by file extension (.xlsx or .csv).
func Load(path string) ([]entities.TreeSpecies, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(f)
	case ".csv":
		return ReadCSV(f)
	}
	return nil, fmt.Errorf("unsupported species file %q", path)
}

func ReadXLSX(r io.Reader) ([]entities.TreeSpecies, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("species sheet is empty")
	}
	return parse(rows[0], rows[1:])
}

func ReadCSV(r io.Reader) ([]entities.TreeSpecies, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, errors.New("species file is empty")
	}
	return parse(all[0], all[1:])
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func parse(head []string, rows [][]string) ([]entities.TreeSpecies, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("common_name", "name", "species")
	cSci := findAny("scientific_name", "latin_name", "botanical_name")
	cNative := findAny("native", "is_native", "indigenous")
	cGrowth := findAny("growth_rate", "growth")
	cHeight := findAny("mature_height_meters", "mature_height", "height_m", "height")
	cDesc := findAny("description", "notes", "remarks")
	if cName == -1 {
		return nil, fmt.Errorf("species sheet missing a common name column; found headers %v", head)
	}

	var out []entities.TreeSpecies
	for _, rec := range rows {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue
		}
		sp := entities.TreeSpecies{
			CommonName:     name,
			ScientificName: get(cSci),
			Native:         truthy(get(cNative)),
			GrowthRate:     strings.ToLower(get(cGrowth)),
			Description:    get(cDesc),
		}
		if h, err := strconv.ParseFloat(get(cHeight), 64); err == nil && h > 0 {
			sp.MatureHeightMeters = &h
		}
		out = append(out, sp)
	}
	return out, nil
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y", "native":
		return true
	}
	return false
}
