package entry

import "fmt"

// Tag is the comment dotcli writes above every entry it adds.
const Tag = "# Added by dotcli"

// Alias is one `alias NAME=VALUE` line. Value is kept verbatim,
// including any quotes.
type Alias struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (a Alias) String() string {
	return fmt.Sprintf("[%s] %s = %s", a.ID, a.Name, a.Value)
}

// PathEntry is one `export PATH=...` line. Path holds the whole
// right-hand side, e.g. `"$PATH:/opt/bin"`.
type PathEntry struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func (p PathEntry) String() string {
	return fmt.Sprintf("[%s] %s", p.ID, p.Path)
}

// FormatAlias renders the block appended for a new alias.
func FormatAlias(name, value string) string {
	return fmt.Sprintf("\n%s\nalias %s=\"%s\"\n", Tag, name, value)
}

// FormatPath renders the block appended for a new PATH entry.
func FormatPath(path string) string {
	return fmt.Sprintf("\n%s\nexport PATH=\"$PATH:%s\"\n", Tag, path)
}
