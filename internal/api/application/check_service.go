package application

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	monitoringdomain "checkhub/internal/monitoring/domain"
	"checkhub/internal/shared/validation"
)

// CheckService validates check requests, delegates to the repository and
// shapes the response envelope. It holds no per-request state.
type CheckService struct {
	repo monitoringdomain.CheckRepository
	now  func() time.Time
}

// NewCheckService creates a new check service
func NewCheckService(repo monitoringdomain.CheckRepository) *CheckService {
	return &CheckService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateCheck stores a reported check result for the monitor in the path
func (s *CheckService) CreateCheck(ctx context.Context, req CheckRequest) (Envelope, error) {
	params, err := createCheckParamsSchema.Validate(validation.FromParams(req.Params))
	if err != nil {
		return Envelope{}, err
	}

	obj, err := bodyObject(req.Body)
	if err != nil {
		return Envelope{}, err
	}
	body, err := createCheckBodySchema.Validate(obj)
	if err != nil {
		return Envelope{}, err
	}

	monitorID := params["monitorId"].(string)
	if body["monitorId"].(string) != monitorID {
		return Envelope{}, validation.NewValidationError(
			map[string]string{"monitorId": "must match the monitorId in the path"}, "body")
	}

	check, err := s.repo.CreateCheck(ctx, monitorID, checkResult(body))
	if err != nil {
		return Envelope{}, err
	}

	return success(MsgCheckCreate, check), nil
}

// GetChecks returns one page of a monitor's checks and the total number of
// checks matching the same filter. The list and the count are independent
// reads; either failing fails the whole call.
func (s *CheckService) GetChecks(ctx context.Context, req CheckRequest) (Envelope, error) {
	params, err := getChecksParamsSchema.Validate(validation.FromParams(req.Params))
	if err != nil {
		return Envelope{}, err
	}
	query, err := checksQuerySchema.Validate(validation.FromQuery(req.Query))
	if err != nil {
		return Envelope{}, err
	}

	filters := checkFilters(query, s.now())
	filters.MonitorID = params["monitorId"].(string)

	var (
		checks []monitoringdomain.Check
		count  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checks, err = s.repo.GetChecks(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.repo.GetChecksCount(gctx, filters)
		return err
	})
	if err := g.Wait(); err != nil {
		return Envelope{}, err
	}

	if checks == nil {
		checks = []monitoringdomain.Check{}
	}

	return success(MsgCheckGet, ChecksPage{ChecksCount: count, Checks: checks}), nil
}

// GetTeamChecks returns checks across every monitor of a team
func (s *CheckService) GetTeamChecks(ctx context.Context, req CheckRequest) (Envelope, error) {
	params, err := getTeamChecksParamsSchema.Validate(validation.FromParams(req.Params))
	if err != nil {
		return Envelope{}, err
	}
	query, err := checksQuerySchema.Validate(validation.FromQuery(req.Query))
	if err != nil {
		return Envelope{}, err
	}

	filters := checkFilters(query, s.now())
	filters.TeamID = params["teamId"].(string)

	checks, err := s.repo.GetTeamChecks(ctx, filters)
	if err != nil {
		return Envelope{}, err
	}
	if checks == nil {
		checks = []monitoringdomain.Check{}
	}

	return success(MsgCheckGet, checks), nil
}
