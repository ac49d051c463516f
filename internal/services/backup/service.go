package backup

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"clinic-desk-backend/internal/logger"
)

// Service copies the sqlite database file byte-for-byte. sqlite serializes
// writers, so copying the file between requests yields a consistent snapshot
// for a single-clinic deployment.
type Service struct {
	dbPath string
}

func NewService(dbPath string) *Service {
	return &Service{dbPath: dbPath}
}

func (s *Service) Backup(destination string) (string, error) {
	if err := copyFile(s.dbPath, destination); err != nil {
		return "", err
	}
	logger.Get().Info("database backed up", zap.String("destination", destination))
	return destination, nil
}

func (s *Service) Restore(source string) error {
	if err := copyFile(source, s.dbPath); err != nil {
		return err
	}
	logger.Get().Warn("database restored from backup", zap.String("source", source))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
