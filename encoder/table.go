package encoder

import (
	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/frame"
)

// Table strategies scope the orientation to values for their children, so
// nested series, indexes and arrays serialize as plain arrays. The caller's
// orientation is restored in end.

// splitOps writes a fixed sequence of literal keys.
type splitOps struct {
	itemOps
}

func (splitOps) begin(s *session, tc *typeContext) error {
	tc.savedOrient = s.orient
	s.orient = format.OrientValues
	tc.limit = len(tc.entries)

	return nil
}

func (splitOps) next(_ *session, tc *typeContext) (bool, error) {
	if tc.cursor >= len(tc.entries) {
		return false, nil
	}

	e := tc.entries[tc.cursor]
	tc.item = e.value
	tc.name = key{text: e.key}
	tc.cursor++

	return true, nil
}

func (splitOps) end(s *session, tc *typeContext) {
	s.orient = tc.savedOrient
	tc.entries = nil
	tc.item = nil
}

func indexSplitEntries(ix *frame.Index) []entry {
	return []entry{
		{key: "name", value: ix.Name()},
		{key: "data", value: ix.Values()},
	}
}

func seriesSplitEntries(sr *frame.Series) []entry {
	return []entry{
		{key: "name", value: sr.Name()},
		{key: "index", value: sr.Index()},
		{key: "data", value: sr.Values()},
	}
}

func frameSplitEntries(df *frame.DataFrame) []entry {
	return []entry{
		{key: "columns", value: df.Columns()},
		{key: "index", value: df.Index()},
		{key: "data", value: df.Values()},
	}
}

// seriesOps walks a series' values, keyed by its index under the index and
// columns orientations.
type seriesOps struct {
	arrayOps
}

func (seriesOps) begin(s *session, tc *typeContext) error {
	tc.savedOrient = s.orient
	sr := tc.value.(*frame.Series)

	if tc.shape == shapeObject {
		labels, err := s.encodeAxis(sr.Index(), sr.Len(), "index", s.orient == format.OrientIndex)
		if err != nil {
			return err
		}
		tc.columnLabels = labels
	}

	s.orient = format.OrientValues

	return arrayOps{}.begin(s, tc)
}

func (seriesOps) end(s *session, tc *typeContext) {
	s.orient = tc.savedOrient
	arrayOps{}.end(s, tc)
}

// frameOps walks a table's values under the records, index, columns and
// values orientations.
//
//	records: array of rows, each keyed by column labels
//	index:   object keyed by row labels, each row keyed by column labels
//	columns: transposed walk, keyed by column labels, then row labels
//	values:  plain nested arrays
type frameOps struct {
	arrayOps
}

func (frameOps) begin(s *session, tc *typeContext) error {
	tc.savedOrient = s.orient
	df := tc.value.(*frame.DataFrame)
	rows, cols := df.Shape()

	var err error
	switch s.orient { //nolint: exhaustive
	case format.OrientRecords:
		tc.columnLabels, err = s.encodeAxis(df.Columns(), cols, "columns", true)
	case format.OrientIndex:
		tc.rowLabels, err = s.encodeAxis(df.Index(), rows, "index", true)
		if err == nil {
			tc.columnLabels, err = s.encodeAxis(df.Columns(), cols, "columns", true)
		}
	case format.OrientColumns:
		tc.transpose = true
		tc.rowLabels, err = s.encodeAxis(df.Columns(), cols, "columns", true)
		if err == nil {
			tc.columnLabels, err = s.encodeAxis(df.Index(), rows, "index", true)
		}
	}
	if err != nil {
		return err
	}

	s.orient = format.OrientValues

	return arrayOps{}.begin(s, tc)
}

func (frameOps) end(s *session, tc *typeContext) {
	s.orient = tc.savedOrient
	arrayOps{}.end(s, tc)
}
