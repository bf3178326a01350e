package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// RegisterRoutes wires every scheduling endpoint under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmSJF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmRoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

// AllAlgorithms runs every policy over an independent copy of the request's
// process set and returns the responses in presentation order.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}

	results := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms))
	for _, algorithm := range schedulers.Algorithms {
		response, err := s.run(algorithm, request)
		if err != nil {
			return scheduleError(ctx, err)
		}
		results = append(results, response)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	response, err := s.run(algorithm, request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

// run applies the config defaults a request left out, then executes.
func (s *SchedulerHandlerImpl) run(algorithm string, request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	timeQuantum := request.TimeQuantum
	if algorithm == schedulers.AlgorithmRoundRobin && timeQuantum == 0 {
		timeQuantum = s.config.RoundRobinTimeQuantum
	}
	withAging := s.config.PriorityAging
	if request.WithAging != nil {
		withAging = *request.WithAging
	}

	schedule, err := schedulers.RunAlgorithm(algorithm, request.CoreProcesses(), timeQuantum, withAging)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(algorithm, schedule)
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	if IsInputError(err) {
		return badRequest(ctx, err.Error())
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "can not process request",
	})
}

// IsInputError reports whether an error came from caller input rather than
// the engine itself.
func IsInputError(err error) bool {
	return errors.Is(err, core.ErrEmptyProcessSet) ||
		errors.Is(err, core.ErrDuplicateID) ||
		errors.Is(err, core.ErrInvalidProcess) ||
		errors.Is(err, core.ErrInvalidQuantum) ||
		errors.Is(err, schedulers.ErrUnknownAlgorithm)
}
