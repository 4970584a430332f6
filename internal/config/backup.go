package config

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is appended to the config path, followed by the rotation number
	BackupSuffix = ".bak"
	// MaxBackupCount is the number of backups kept next to the config file
	MaxBackupCount = 3
)

// BackupPath returns the path of backup n for configPath. Lower numbers are
// more recent: config.toml.bak.1 is the latest copy.
func BackupPath(configPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", configPath, BackupSuffix, n)
}

// rotateBackups drops the oldest backup and shifts the others up by one.
// Missing files are skipped.
func rotateBackups(configPath string) error {
	if err := os.Remove(BackupPath(configPath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}
	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(configPath, i), BackupPath(configPath, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Backup copies the config file to backup 1 after rotating older backups.
// A missing config file is not an error and creates no backup.
func Backup(configPath string) error {
	src, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	if err := rotateBackups(configPath); err != nil {
		return fmt.Errorf("failed to rotate config backups: %w", err)
	}

	dst, err := os.OpenFile(BackupPath(configPath, 1), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// ListBackups returns the existing backup paths, most recent first.
func ListBackups(configPath string) []string {
	var paths []string
	for i := 1; i <= MaxBackupCount; i++ {
		p := BackupPath(configPath, i)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}
