package model

// CodeBlock is a contiguous run of lines sharing one indentation level,
// bounded by indentation changes. Line indexes are zero-based and inclusive.
type CodeBlock struct {
	StartLine   int
	EndLine     int
	IndentLevel int
}

// FoldingRange is a block the host should collapse into a single visual
// line. StartColumn is always 0 and EndColumn the length of the last line,
// kept for editor-range compatibility.
type FoldingRange struct {
	StartLine   int `json:"startLine"`
	EndLine     int `json:"endLine"`
	StartColumn int `json:"startColumn"`
	EndColumn   int `json:"endColumn"`
}
