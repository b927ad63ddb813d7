package storage

import (
	"sync"
	"time"

	"ohd/internal/models"
	"ohd/internal/providers"
	"ohd/internal/services"
	"ohd/internal/storage/interfaces"
	"ohd/internal/structures"
)

type Scheduler struct {
	config       *structures.Config
	logger       providers.Logger
	service      services.ScheduleServiceInterface
	fileManager  *FileManager
	metrics      providers.MetricsProviderInterface
	opsMu        sync.Mutex
	savedVersion uint64
	stop         chan struct{}
	done         chan struct{}
}

// Init starts the background saver. A tick only writes when the schedule
// version moved since the last successful save.
func (s *Scheduler) Init() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	interval := s.config.Persistence.SaveInterval

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Scheduler) tick() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	version := s.service.GetVersion()
	if version == s.savedVersion {
		return
	}
	if err := s.save(version); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting schedule: %s", err)
		return
	}
	s.logger.Infof(providers.TypeApp, "Persisted schedule v%d to file %s", version, s.config.Persistence.FilePath)
}

func (s *Scheduler) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}

// Restore loads the last snapshot, or the seed file when there is none.
func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	loaded, err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	if loaded {
		s.savedVersion = s.service.GetVersion()
		s.logger.Infof(providers.TypeApp, "Restored schedule from %s", s.config.Persistence.FilePath)
	} else if seed := s.config.Schedule.SeedFile; seed != "" {
		if err := s.fileManager.LoadSeed(seed); err != nil {
			return err
		}
	}
	s.updateGauges()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting schedule to file...")
	err := s.save(s.service.GetVersion())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting schedule: %s", err)
		return err
	}
	return nil
}

// save must be called with opsMu held.
func (s *Scheduler) save(version uint64) error {
	start := time.Now()
	if err := s.fileManager.SaveToFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	s.savedVersion = version
	s.updateGauges()
	return nil
}

func (s *Scheduler) updateGauges() {
	times := s.service.GetOpeningTimes()
	for _, day := range models.Weekdays {
		s.metrics.SetIntervalsTotal(string(day), len(times[day]))
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.ScheduleServiceInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
