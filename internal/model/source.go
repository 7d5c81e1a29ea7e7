// Package model defines the data structures for error-fold scanning.
package model

// Path represents a file system path.
type Path string

// Language identifies the advisory source language of a file. It is derived
// from the file extension and only decides whether a file is scanned at all;
// the engine itself is language-agnostic.
type Language string

// Languages the scanner attaches to.
const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangC          Language = "c"
	LangCPP        Language = "cpp"
	LangCSharp     Language = "csharp"
	LangJava       Language = "java"
	LangPython     Language = "python"
)

// File pairs a path with a stable content fingerprint.
type File struct {
	Path Path
	Hash string
}

// Source represents a single scannable source file.
type Source struct {
	Origin   *File
	Language Language
}
