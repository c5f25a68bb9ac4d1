// Package backup keeps timestamped copies of shell config files.
//
// Before dotcli rewrites a shell file, the current contents are copied to
//
//	<DataHome>/dotcli/backups/<file name>/<timestamp>
//
// and the oldest copies beyond the retention count are pruned. Backups
// are a safety net only; dotcli has no restore or undo command.
package backup
