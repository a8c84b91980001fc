package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"os-simulator/config"
	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Bankers(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SRTF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RR)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) Bankers(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Bankers)
}

// AllAlgorithms runs every timing algorithm on the same jobs so the results
// can be compared side by side.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	runID := uuid.NewString()
	response := responses.AllAlgorithmsResponse{
		RunID:   runID,
		Results: make(map[string]responses.ScheduleResponse),
	}
	for _, algorithm := range schedulers.TimingAlgorithms() {
		result, err := schedulers.Schedule(request.Run(algorithm, s.config.RoundRobinTimeQuantum))
		if err != nil {
			return writeError(ctx, err)
		}
		response.Results[string(algorithm)] = responses.Build(runID, result)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	names := make([]string, 0)
	for _, algorithm := range schedulers.GetAvailableAlgorithms() {
		names = append(names, string(algorithm))
	}
	return ctx.JSON(fiber.Map{"algorithms": names})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := schedulers.Schedule(request.Run(algorithm, s.config.RoundRobinTimeQuantum))
	if err != nil {
		return writeError(ctx, err)
	}

	response := responses.Build(uuid.NewString(), result)
	slog.Debug("schedule computed", "run_id", response.RunID, "algorithm", algorithm, "processes", len(response.Details))
	return ctx.JSON(response)
}

var errInvalidRequestFormat = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, errInvalidRequestFormat
	}
	limits := requests.Limits{MaxJobs: s.config.MaxJobs, MaxTime: s.config.MaxTime}
	if err := request.Validate(limits); err != nil {
		return nil, err
	}
	return &request, nil
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidRequestFormat),
		errors.Is(err, schedulers.ErrInvalidProcess),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrMalformedResourceState),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusBadRequest
	case errors.Is(err, schedulers.ErrDeadlockRisk):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		slog.Error("can not process request", "error", err)
		return ctx.Status(status).JSON(fiber.Map{"error": "can not process request"})
	}
	slog.Debug("rejected request", "status", status, "error", err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
