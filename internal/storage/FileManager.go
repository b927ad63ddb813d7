package storage

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"ohd/internal/models"
	"ohd/internal/providers"
	"ohd/internal/services"
	"ohd/internal/storage/interfaces"
)

type FileManager struct {
	service    services.ScheduleServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.ScheduleServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile writes the current schedule snapshot through a temp file and a
// rename, so a crash never leaves a half-written snapshot behind.
func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.service.GetSnapshot()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores a snapshot. A missing file is not an error; the
// returned flag tells the caller whether anything was loaded.
func (f *FileManager) LoadFromFile(fileName string) (bool, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return false, err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(decompressedData, &snapshot); err != nil {
		return false, err
	}
	if snapshot.Version != models.SnapshotVersion {
		return false, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	if err := f.service.PutSnapshot(&snapshot); err != nil {
		return false, err
	}
	return true, nil
}

// LoadSeed reads a plain (uncompressed) schedule document, the same format
// the HTTP API accepts.
func (f *FileManager) LoadSeed(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	if err := f.service.ReplaceScheduleJSON(data); err != nil {
		return fmt.Errorf("seed %s: %w", fileName, err)
	}
	f.logger.Infof(providers.TypeApp, "Loaded seed schedule from %s", fileName)
	return nil
}
