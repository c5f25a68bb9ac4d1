// Package entry defines the shell config entries dotcli manages and the
// line-oriented parser that recovers them from a config file.
//
// Matching is purely textual: any line containing "alias" is an alias
// line, any line containing "export PATH=" is a PATH line. Entries are
// numbered 1..N in file order among matching lines only; ids are not
// stored and are recomputed on every read.
package entry
