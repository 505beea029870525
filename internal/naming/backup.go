package naming

import "time"

// backupTimeLayout gives second-resolution, filesystem-safe timestamps that
// sort lexicographically by creation time. Two runs starting within the same
// second collide; that is a documented limitation, not something we resolve.
const backupTimeLayout = "2006-01-02_15-04-05"

// BackupFileName returns the manifest filename for a run starting at now,
// e.g. "backup_2025-06-01_14-30-07.txt". The manifest lives in the renamed
// directory itself; it never matches a normal extension filter, which is the
// only thing keeping it out of later runs.
func BackupFileName(now time.Time) string {
	return "backup_" + now.Format(backupTimeLayout) + ".txt"
}
