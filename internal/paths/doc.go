// Package paths resolves the directories and files dotcli works with.
//
// Home directory lookup follows the shell: it comes from $HOME and fails
// when that variable is unset, rather than falling back to the password
// database. Tool-owned directories (configuration, backups) follow the XDG
// Base Directory layout via github.com/adrg/xdg:
//
//	paths.AppConfigDir() // ~/.config/dotcli
//	paths.BackupDir()    // ~/.local/share/dotcli/backups
//
// Shell config candidates are written with a leading "~" and expanded
// against an explicit home directory with [ExpandHome], so callers can
// inject a fake home in tests.
package paths
