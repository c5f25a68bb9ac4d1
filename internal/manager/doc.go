// Package manager runs dotcli's category/action commands against the
// user's shell config file.
//
// A [Dispatcher] holds a table of [Category] implementations ("alias",
// "path"). Each run validates the category, locates the shell config,
// parses that category's entries, then validates and executes the
// action ("add" or "list"). Everything environmental (home directory,
// working directory, filesystem, re-source side effect, output writer)
// is injected, so runs are deterministic under test.
package manager
