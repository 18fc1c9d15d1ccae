// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabletext

import "regexp"

// ColumnType is the inferred kind of a column's values.
type ColumnType int

const (
	ColumnText ColumnType = iota
	ColumnNumber
	ColumnDateTime
	ColumnPath
)

func (c ColumnType) String() string {
	switch c {
	case ColumnNumber:
		return "number"
	case ColumnDateTime:
		return "datetime"
	case ColumnPath:
		return "path"
	}
	return "text"
}

var (
	reNumber   = regexp.MustCompile(`^-?[0-9][0-9,.]*%?$`)
	reDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2})?)?|\d{1,3}[dhms]|<?\d+[dhms](\d+[dhms])*>?|\d{2}:\d{2}(:\d{2})?|\d{1,2}[A-Z][a-z]{2}\d{2,4}|\d+\.\d+[dhms])$`)
	rePath     = regexp.MustCompile(`[/\\]|^\.\w+$|^[\w.-]+\.\w{1,5}$`)
)

// Classify infers a column type from its values. Numbers and datetimes need
// 60% of the non-empty values; paths are distinctive enough at 40%.
func Classify(values []string) ColumnType {
	var numbers, dates, paths, total int
	for _, v := range values {
		if v == "" || v == "-" || v == "<none>" {
			continue
		}
		total++
		switch {
		case reNumber.MatchString(v):
			numbers++
		case reDateTime.MatchString(v):
			dates++
		case rePath.MatchString(v):
			paths++
		}
	}
	switch {
	case total == 0:
		return ColumnText
	case numbers*100/total >= 60:
		return ColumnNumber
	case dates*100/total >= 60:
		return ColumnDateTime
	case paths*100/total >= 40:
		return ColumnPath
	}
	return ColumnText
}
