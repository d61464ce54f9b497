package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"calculator/internal/debuglog"
	"calculator/internal/platform"
)

// maxLogFileSize is the log size that triggers rotation to a .old backup
const maxLogFileSize = 10 * 1024 * 1024 // 10 MB

// FileService resolves the paths next to the executable and owns the log file.
type FileService struct {
	ExecDir      string
	SettingsPath string
	MainLogPath  string

	MainLogFile *os.File
}

// NewFileService resolves paths relative to the running executable.
func NewFileService() (*FileService, error) {
	ex, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("NewFileService: cannot determine executable path: %w", err)
	}
	return NewFileServiceAt(filepath.Dir(ex))
}

// NewFileServiceAt resolves paths relative to execDir and creates the
// directories the application writes to.
func NewFileServiceAt(execDir string) (*FileService, error) {
	if err := platform.EnsureDirectories(execDir); err != nil {
		return nil, fmt.Errorf("NewFileService: cannot create directories: %w", err)
	}
	return &FileService{
		ExecDir:      execDir,
		SettingsPath: platform.GetSettingsPath(execDir),
		MainLogPath:  platform.GetMainLogPath(execDir),
	}, nil
}

// OpenLogFile opens the main log file with rotation and points the standard
// logger at it. When stderrToo is set, output is also mirrored to stderr.
func (fs *FileService) OpenLogFile(stderrToo bool) error {
	logFile, err := fs.OpenLogFileWithRotation(fs.MainLogPath)
	if err != nil {
		return fmt.Errorf("OpenLogFile: cannot open main log file: %w", err)
	}
	fs.MainLogFile = logFile
	if stderrToo {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	} else {
		log.SetOutput(logFile)
	}
	return nil
}

// CloseLogFiles restores stderr logging and closes the log file.
func (fs *FileService) CloseLogFiles() {
	if fs.MainLogFile != nil {
		log.SetOutput(os.Stderr)
		debuglog.CloseWithLog("CloseLogFiles", fs.MainLogFile)
		fs.MainLogFile = nil
	}
}

// OpenLogFileWithRotation opens a log file with rotation support.
func (fs *FileService) OpenLogFileWithRotation(logPath string) (*os.File, error) {
	CheckAndRotateLogFile(logPath, maxLogFileSize)
	// Append, so a restart keeps the tail of the previous session
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// CheckAndRotateLogFile renames logPath to logPath+".old" once it grows past limit.
func CheckAndRotateLogFile(logPath string, limit int64) {
	info, err := os.Stat(logPath)
	if err != nil {
		return // File doesn't exist yet, nothing to rotate
	}

	if info.Size() > limit {
		oldPath := logPath + ".old"
		_ = os.Remove(oldPath)
		if err := os.Rename(logPath, oldPath); err != nil {
			log.Printf("CheckAndRotateLogFile: Failed to rotate log file %s: %v", logPath, err)
		} else {
			log.Printf("CheckAndRotateLogFile: Rotated log file %s (size: %d bytes)", logPath, info.Size())
		}
	}
}
