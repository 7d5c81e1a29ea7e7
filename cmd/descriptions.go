package cmd

const rootLongDescription = `Errfold scans source files and detects indentation-delimited blocks whose
dominant purpose is error handling (guarded failure branches, error
returns, throws, gotos, failure logging) so an editor or viewer can
collapse them.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./lib ./app    scan multiple directories`

const scanLongDescription = `Scan analyzes all matching source files, persists the detected folding
ranges as a JSON report and prints a summary. Use --parallel to scan
files concurrently and --shard to split work across CI jobs.`

const listLongDescription = `List shows every matching source file together with the number of
error-handling ranges the engine detects in it. Nothing is persisted.`

const viewLongDescription = `View renders previously persisted scan reports from the reports
directory, including the individual line ranges per file.`
