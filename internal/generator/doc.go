// Package generator provides the building blocks for scaffolding runs.
//
// A run is expressed as a list of Operations (write a file, insert a line
// into an existing file, append a line). Operations are validated up front
// and then executed in order by Execute, which also supports dry runs.
// Templates are rendered by Renderer, a thin caching wrapper around
// text/template.
package generator
