package species

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/restoration-tracker/internal/config"
	"github.com/restoration-tracker/internal/domain"
	"github.com/restoration-tracker/internal/domain/repository"
	"github.com/restoration-tracker/internal/worker"
	"go.uber.org/zap"
)

// LabelWarmWorker keeps the species label cache warm. It follows the project
// events stream and, for every changed project, resolves the project's focal
// species through the taxonomy service and rewrites the label entries.
type LabelWarmWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	projectRepo  repository.ProjectRepository
	taxonomyRepo repository.TaxonomyRepository
	cacheRepo    repository.CacheRepository
	labelTTL     time.Duration
	consumerName string
	maxRetries   int
}

func NewLabelWarmWorker(
	streamRepo repository.StreamRepository,
	projectRepo repository.ProjectRepository,
	taxonomyRepo repository.TaxonomyRepository,
	cacheRepo repository.CacheRepository,
	cacheCfg config.CacheConfig,
	workerCfg config.WorkerConfig,
	logger *zap.Logger,
) *LabelWarmWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &LabelWarmWorker{
		BaseWorker:   worker.NewBaseWorker("species-label-warm", workerCfg.ConsumerGroup, logger),
		streamRepo:   streamRepo,
		projectRepo:  projectRepo,
		taxonomyRepo: taxonomyRepo,
		cacheRepo:    cacheRepo,
		labelTTL:     cacheCfg.SpeciesLabelTTL,
		consumerName: consumerName,
		maxRetries:   workerCfg.MaxRetries,
	}
}

func (w *LabelWarmWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting species label warm worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.ProjectEventsStream, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.ProjectEventsStream, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to start stream consumer: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *LabelWarmWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.ProjectEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Skipping unreadable event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack so the broken message does not get redelivered forever.
		_ = w.streamRepo.AckMessage(ctx, domain.ProjectEventsStream, w.ConsumerGroup(), msg.ID)
		return
	}

	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if err = w.warmProject(ctx, event); err == nil {
			break
		}
		logger.Warn("Warm attempt failed",
			zap.Int64("project_id", event.ProjectID),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	if err != nil {
		logger.Error("Giving up on event",
			zap.String("message_id", msg.ID),
			zap.Int64("project_id", event.ProjectID),
			zap.Error(err))
		// Fall through to ack; the next change to the project retriggers.
	}

	if err := w.streamRepo.AckMessage(ctx, domain.ProjectEventsStream, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message", zap.String("message_id", msg.ID), zap.Error(err))
	}
}

// warmProject resolves labels for every focal species of the project and
// writes them to the cache. Deleted projects need no warming.
func (w *LabelWarmWorker) warmProject(ctx context.Context, event domain.ProjectEvent) error {
	if event.Type == domain.EventProjectDeleted {
		return nil
	}

	species, err := w.projectRepo.GetProjectSpecies(ctx, event.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to load project species: %w", err)
	}
	if len(species) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(species))
	for _, s := range species {
		ids = append(ids, s.TSN)
	}

	codes, err := w.taxonomyRepo.ResolveSpecies(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve species: %w", err)
	}

	labels := make(map[int64]string, len(codes))
	for _, code := range codes {
		labels[code.ID] = code.Label
	}
	if len(labels) == 0 {
		return nil
	}

	if err := w.cacheRepo.SetSpeciesLabels(ctx, labels, w.labelTTL); err != nil {
		return fmt.Errorf("failed to cache species labels: %w", err)
	}

	w.Logger().Debug("Warmed species labels",
		zap.Int64("project_id", event.ProjectID),
		zap.Int("labels", len(labels)))
	return nil
}
