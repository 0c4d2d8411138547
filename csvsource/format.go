package csvsource

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/domonda/go-types/charset"
)

// Format of a CSV file.
type Format struct {
	// Encoding is the name of the character encoding,
	// see charset.GetEncoding.
	Encoding string `json:"encoding"`

	// Separator is a single character separating fields.
	Separator string `json:"separator"`

	// Newline is "\n" or "\r\n".
	Newline string `json:"newline"`
}

// Validate returns an error if the format is incomplete or invalid.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvsource.Format")
	case f.Encoding == "":
		return errors.New("missing csvsource.Format.Encoding")
	case len(f.Separator) != 1:
		return fmt.Errorf("invalid csvsource.Format.Separator: %q", f.Separator)
	case f.Newline != "\n" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvsource.Format.Newline: %q", f.Newline)
	}
	return nil
}

// DetectionConfig lists the encodings tried in order
// and the strings that prove a correct decoding.
type DetectionConfig struct {
	Encodings     []string `json:"encodings"`
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultDetectionConfig returns a DetectionConfig for
// western european and cyrillic CSV exports.
func NewDefaultDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252",
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}

// decode converts data to UTF-8 using the first encoding of config
// that decodes one of its test strings. UTF-8 is assumed if none does.
func decode(data []byte, config *DetectionConfig) (utf8 []byte, encoding string, err error) {
	encodings := make([]charset.Encoding, 0, len(config.Encodings))
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, "", err
		}
		encodings = append(encodings, enc)
	}
	utf8, encoding, err = charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, "", err
	}
	if encoding == "" {
		encoding = "UTF-8"
	}
	return charset.TrimBOM(utf8, charset.BOMUTF8), encoding, nil
}

func decodeWithEncoding(data []byte, encoding string) ([]byte, error) {
	if encoding == "UTF-8" {
		return charset.TrimBOM(data, charset.BOMUTF8), nil
	}
	enc, err := charset.GetEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return enc.Decode(data)
}

// detectFormat finds the newline and separator of UTF-8 data
// and returns the data without a leading "sep=X" line.
func detectFormat(data []byte, encoding string) (*Format, []byte) {
	format := &Format{Encoding: encoding, Newline: "\n", Separator: ","}
	if bytes.Contains(data, []byte{'\r', '\n'}) {
		format.Newline = "\r\n"
	}

	firstLine, rest, _ := bytes.Cut(data, []byte(format.Newline))
	if sep := parseSepHeaderLine(firstLine); sep != "" {
		format.Separator = sep
		return format, rest
	}

	var commas, semicolons, tabs int
	for line := range bytes.SplitSeq(data, []byte(format.Newline)) {
		commas += bytes.Count(line, []byte{','})
		semicolons += bytes.Count(line, []byte{';'})
		tabs += bytes.Count(line, []byte{'\t'})
	}
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	}
	return format, data
}

// parseSepHeaderLine returns X for a line "sep=X" or "SEP=X"
// which may be quoted.
func parseSepHeaderLine(line []byte) string {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}
