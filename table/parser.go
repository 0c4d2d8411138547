package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Parser parses the string representation of cell values
// into typed values.
type Parser interface {
	ParseInt(string) (int64, error)
	ParseFloat(string) (float64, error)
	ParseBool(string) (bool, error)
	ParseTime(string) (time.Time, error)
	// IsNil reports if the string represents a missing value.
	IsNil(string) bool
}

var _ Parser = new(StringParser)

// StringParser is a configurable Parser.
//
// The zero value parses no booleans, no nil strings and no times,
// use NewStringParser for sensible defaults.
type StringParser struct {
	TrueStrings  []string `json:"trueStrings"`
	FalseStrings []string `json:"falseStrings"`
	NilStrings   []string `json:"nilStrings"`
	TimeFormats  []string `json:"timeFormats"`
}

// NewStringParser returns a StringParser with english boolean strings,
// the usual null strings and ISO, SQL and RFC time formats.
func NewStringParser() *StringParser {
	return &StringParser{
		TrueStrings:  []string{"true", "True", "TRUE", "yes", "Yes", "YES", "1"},
		FalseStrings: []string{"false", "False", "FALSE", "no", "No", "NO", "0"},
		NilStrings:   []string{"", "nil", "<nil>", "null", "NULL", "NaN", "#N/A"},
		TimeFormats:  timeFormats,
	}
}

func (p *StringParser) ParseInt(str string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(str), 10, 64)
}

// ParseFloat also accepts a single comma as decimal separator.
func (p *StringParser) ParseFloat(str string) (float64, error) {
	str = strings.TrimSpace(str)
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		if strings.Count(str, ",") == 1 && !strings.Contains(str, ".") {
			if f, e := strconv.ParseFloat(strings.ReplaceAll(str, ",", "."), 64); e == nil {
				return f, nil
			}
		}
		return 0, err
	}
	return f, nil
}

func (p *StringParser) ParseBool(str string) (bool, error) {
	if slices.Contains(p.TrueStrings, str) {
		return true, nil
	}
	if slices.Contains(p.FalseStrings, str) {
		return false, nil
	}
	return false, fmt.Errorf("cannot parse %q as bool", str)
}

func (p *StringParser) ParseTime(str string) (time.Time, error) {
	for _, format := range p.TimeFormats {
		t, err := time.Parse(format, str)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as time", str)
}

func (p *StringParser) IsNil(str string) bool {
	return slices.Contains(p.NilStrings, str)
}

var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
	"02.01.2006 15:04:05",
	"02.01.2006",
	"01/02/2006",
}
