package evaluator

// StdinReader fronts standard input for the `input()` expression: one
// whitespace-separated integer per call. The CLI driver owns the
// concrete implementation (spec.md §6, §9 — the entry point is a thin
// external collaborator, not part of the core).
type StdinReader interface {
	ReadInt() (int32, error)
}

// FileReader fronts `read("path")`: it opens path, extracts a single
// whitespace-separated integer, and closes the file before returning
// (spec.md §5 — file handles are scoped to one expression evaluation).
type FileReader interface {
	ReadIntFrom(path string) (int32, error)
}
