package converter

import "errors"

// Status lines shown to the user.
const (
	StatusIdle          = "Drag and drop Excel file here"
	StatusInvalidFile   = "❌ Please upload a valid .xlsx file."
	StatusProcessing    = "📄 Processing Excel..."
	StatusSheetNotFound = "❌ Sheet '" + SheetName + "' not found."
	StatusCreated       = "✅ Word document created!"
	StatusError         = "❌ Error processing Excel."
)

// StatusFor maps the outcome of a conversion to its status line.
func StatusFor(err error) string {
	if err == nil {
		return StatusCreated
	}

	var notFound *SheetNotFoundError
	switch {
	case errors.Is(err, ErrInvalidFileType):
		return StatusInvalidFile
	case errors.As(err, &notFound):
		return StatusSheetNotFound
	default:
		return StatusError
	}
}
