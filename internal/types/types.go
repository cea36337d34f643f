package types

// Row is a single worksheet row as read from the spreadsheet, one formatted
// value per cell. Trailing empty cells may be missing.
type Row []string

// Cell returns the value at column index i. ok is false when the row is too
// short to have that column.
func (r Row) Cell(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

type Category int

const (
	CategoryException Category = iota
	CategoryClarification
)

func (c Category) String() string {
	switch c {
	case CategoryException:
		return "Exception"
	case CategoryClarification:
		return "Clarification"
	}
	return "Unknown"
}

// BulletEntry is a remark split around its marker.
type BulletEntry struct {
	Header  string `yaml:"header"`
	Type    string `yaml:"type"`
	Message string `yaml:"message"`
}

// Classified holds the entries of both sections in row order.
type Classified struct {
	Exceptions     []BulletEntry `yaml:"exceptions"`
	Clarifications []BulletEntry `yaml:"clarifications"`
}

type ConversionResult struct {
	ID             string
	InputFile      string
	OutputFile     string
	RowsScanned    int
	TextsExtracted int
	Exceptions     int
	Clarifications int
}
