package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mehmetadiyaman/DiyetimTakip-sub000/database"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/llm"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/logger"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/notify"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/planner"
	"github.com/mehmetadiyaman/DiyetimTakip-sub000/repository"
)

// PlanJob asks for a plan to be regenerated for a client off the request path.
type PlanJob struct {
	ClientID uint
}

// PlanUpdate is fanned out to SSE subscribers when a plan finishes.
type PlanUpdate struct {
	ClientID      uint   `json:"client_id"`
	PlanName      string `json:"plan_name"`
	DailyCalories int    `json:"daily_calories"`
	Source        string `json:"source"`
}

// PlanWorker regenerates plans in the background and fans results out to
// subscribers. Plans are not persisted; subscribers and the notifier are the
// only consumers.
type PlanWorker struct {
	jobs        chan PlanJob
	svc         *planner.Service
	notifier    notify.Notifier
	subscribers map[chan PlanUpdate]bool
	subMux      sync.RWMutex
}

var (
	worker     *PlanWorker
	workerOnce sync.Once
)

// NewPlanWorker builds a worker around its collaborators. The notifier is an
// injected capability; the worker never reaches for a global messenger.
func NewPlanWorker(svc *planner.Service, notifier notify.Notifier) *PlanWorker {
	return &PlanWorker{
		jobs:        make(chan PlanJob, 100),
		svc:         svc,
		notifier:    notifier,
		subscribers: make(map[chan PlanUpdate]bool),
	}
}

// GetWorker returns the singleton PlanWorker instance, starting it on first use.
func GetWorker() *PlanWorker {
	workerOnce.Do(func() {
		svc := planner.NewService(repository.NewClientRepository(database.DB), llm.NewClient())
		worker = NewPlanWorker(svc, notify.NewLogNotifier())
		go worker.run()
		logger.Info("Plan worker started")
	})
	return worker
}

// Enqueue adds a plan job to the queue
func (w *PlanWorker) Enqueue(clientID uint) {
	select {
	case w.jobs <- PlanJob{ClientID: clientID}:
		logger.Info("Plan job enqueued", "client_id", clientID)
	default:
		logger.Warn("Plan job queue full, dropping job", "client_id", clientID)
	}
}

// Subscribe registers a channel to receive plan updates
func (w *PlanWorker) Subscribe(ch chan PlanUpdate) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	w.subscribers[ch] = true
}

// Unsubscribe removes a channel from plan updates
func (w *PlanWorker) Unsubscribe(ch chan PlanUpdate) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	delete(w.subscribers, ch)
	close(ch)
}

func (w *PlanWorker) run() {
	for job := range w.jobs {
		w.processJob(job)
	}
}

func (w *PlanWorker) processJob(job PlanJob) {
	logger.Info("Processing plan job", "client_id", job.ClientID)

	result, err := w.svc.GeneratePlan(context.Background(), job.ClientID)
	if err != nil {
		if errors.Is(err, planner.ErrClientNotFound) {
			logger.Warn("Plan job for unknown client, skipping", "client_id", job.ClientID)
			return
		}
		logger.Error("Plan job failed", "client_id", job.ClientID, "error", err)
		return
	}

	logger.Info("Plan regenerated", "client_id", job.ClientID,
		"source", result.Source, "daily_calories", result.Plan.Target.DailyCalories)

	recipient := fmt.Sprintf("client:%d", job.ClientID)
	text := fmt.Sprintf("Your updated meal plan %q is ready (%d kcal per day).",
		result.Plan.Name, result.Plan.Target.DailyCalories)
	if err := w.notifier.Send(recipient, text); err != nil {
		logger.Warn("Failed to notify client", "client_id", job.ClientID, "error", err)
	}

	update := PlanUpdate{
		ClientID:      job.ClientID,
		PlanName:      result.Plan.Name,
		DailyCalories: result.Plan.Target.DailyCalories,
		Source:        string(result.Source),
	}

	w.subMux.RLock()
	for ch := range w.subscribers {
		select {
		case ch <- update:
		default:
			// Drop update if subscriber is slow
		}
	}
	w.subMux.RUnlock()
}
