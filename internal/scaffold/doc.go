// Package scaffold generates a puzzle-solving project from a completed
// options value. Static template files are copied with the project name
// substituted for the placeholder token; the shared library's source files
// are synthesized from ordered fragments keyed on the options. The finished
// directory is committed as a single zip archive.
package scaffold
