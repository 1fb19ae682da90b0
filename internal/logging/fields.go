package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldLayer      = "layer"

	// Configuration fields.
	FieldFlavor = "flavor"
	FieldDataAs = "data_as"
	FieldJobs   = "jobs"
	FieldFormat = "format"

	// Grid fields.
	FieldLine   = "line"
	FieldTables = "tables"
	FieldRows   = "rows"
	FieldCells  = "cells"
	FieldEvents = "events"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWritten    = "files_written"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
