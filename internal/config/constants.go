package config

const SourceFileExt = ".pf"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".pf", ".parfun"}

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "parfun.yaml"

// DefaultCounterDSN keeps counter tables in process memory unless a project
// file points them at a database file.
const DefaultCounterDSN = ":memory:"

// Built-in module names
const (
	MathModuleName    = "math"
	ListsModuleName   = "lists"
	StringModuleName  = "string"
	CounterModuleName = "counter"
	IOModuleName      = "io"
)
