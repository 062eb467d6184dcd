package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output.
const (
	FieldFile       = "file_path"
	FieldPage       = "page"
	FieldPages      = "pages"
	FieldCount      = "count"
	FieldCategory   = "category"
	FieldFormat     = "format"
	FieldTemplate   = "template"
	FieldWorkers    = "workers"
	FieldScale      = "scale"
	FieldOutputFile = "output_file"
)
