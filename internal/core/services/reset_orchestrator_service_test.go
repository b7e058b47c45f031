package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/freelanceos/internal/apperrors"
	"github.com/SscSPs/freelanceos/internal/core/domain"
	portssvc "github.com/SscSPs/freelanceos/internal/core/ports/services"
	"github.com/SscSPs/freelanceos/internal/core/services"
	"github.com/SscSPs/freelanceos/internal/dto"
	"github.com/SscSPs/freelanceos/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ResetOrchestratorServiceTestSuite struct {
	suite.Suite
	cfg       *config.Config
	invoker   *MockResetFunctionInvoker
	logReader *MockResetRepository
}

func (suite *ResetOrchestratorServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		SupabaseURL:    "https://demo.supabase.co",
		ServiceRoleKey: "service-key",
		ResetEnabled:   true,
		ResetInterval:  domain.IntervalDaily,
		ResetLocation:  time.UTC,
		CronSecret:     "cron-secret",
	}
	suite.invoker = new(MockResetFunctionInvoker)
	suite.logReader = new(MockResetRepository)
}

func (suite *ResetOrchestratorServiceTestSuite) newService() portssvc.ResetOrchestratorSvc {
	return services.NewResetOrchestratorService(
		suite.cfg,
		suite.invoker,
		services.WithResetLogReader(suite.logReader),
		services.WithOrchestratorClock(func() time.Time { return fixedNow }),
	)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_MissingURL() {
	suite.cfg.SupabaseURL = ""

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorManual, Force: true})

	suite.Require().ErrorIs(err, apperrors.ErrConfiguration)
	suite.Require().NotNil(resp)
	suite.False(resp.Success)
	suite.Equal("SUPABASE_URL environment variable is required", resp.Error)
	suite.Equal("Database reset failed: SUPABASE_URL environment variable is required", resp.Message)
	suite.invoker.AssertNotCalled(suite.T(), "Invoke", mock.Anything, mock.Anything)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_MissingServiceKey() {
	suite.cfg.ServiceRoleKey = ""

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorScheduled})

	suite.Require().ErrorIs(err, apperrors.ErrConfiguration)
	suite.Equal("SUPABASE_SERVICE_ROLE_KEY environment variable is required", resp.Error)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_DisabledIsSkipped() {
	suite.cfg.ResetEnabled = false

	for _, actor := range []domain.ResetActor{domain.ActorManual, domain.ActorScheduled} {
		resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: actor})

		suite.Require().NoError(err)
		suite.True(resp.Success)
		suite.True(resp.Skipped)
		suite.Equal("Database reset is disabled. Use force=true to override.", resp.Message)
		suite.Equal(actor, resp.TriggeredBy)
	}
	suite.invoker.AssertNotCalled(suite.T(), "Invoke", mock.Anything, mock.Anything)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_DryRunReturnsPayload() {
	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorManual, Force: true, DryRun: true})

	suite.Require().NoError(err)
	suite.True(resp.DryRun)
	suite.Require().NotNil(resp.WouldReset)
	suite.Equal("https://demo.supabase.co/functions/v1/database-reset", resp.WouldReset.Endpoint)
	suite.Equal(dto.ResetFunctionRequest{TriggeredBy: "manual", Force: true}, resp.WouldReset.Payload)
	suite.invoker.AssertNotCalled(suite.T(), "Invoke", mock.Anything, mock.Anything)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_Success() {
	counts := &domain.ResetCounts{Projects: 6, Notes: 15, Bills: 9}
	suite.invoker.On("Invoke", mock.Anything, dto.ResetFunctionRequest{TriggeredBy: "manual", Force: true}).
		Return(&dto.ResetFunctionReply{
			StatusCode: http.StatusOK,
			ResetFunctionResponse: dto.ResetFunctionResponse{
				Success:         true,
				Duration:        420,
				RecordsAffected: counts,
			},
		}, nil).Once()

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorManual, Force: true})

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Equal("Database reset completed successfully", resp.Message)
	suite.Require().NotNil(resp.RecordsAffected)
	suite.Equal(6, resp.RecordsAffected.Projects)
	suite.Require().NotNil(resp.ResetDuration)
	suite.Equal(int64(420), *resp.ResetDuration)
	suite.Equal("2026-10-14T10:30:00.000Z", resp.Timestamp)
	suite.invoker.AssertExpectations(suite.T())
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_NotFound() {
	suite.invoker.On("Invoke", mock.Anything, mock.Anything).
		Return(&dto.ResetFunctionReply{StatusCode: http.StatusNotFound}, nil).Once()

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorManual, Force: true})

	suite.Require().ErrorIs(err, apperrors.ErrDownstream)
	suite.False(resp.Success)
	suite.Contains(resp.Message, "Reset API returned 404")
	suite.Equal("Reset API returned 404: Unknown error", resp.Error)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_RemoteErrorText() {
	suite.invoker.On("Invoke", mock.Anything, mock.Anything).Return(&dto.ResetFunctionReply{
		StatusCode:            http.StatusBadRequest,
		ResetFunctionResponse: dto.ResetFunctionResponse{Error: "Demo user not found"},
	}, nil).Once()

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorScheduled})

	suite.Require().Error(err)
	suite.Equal("Reset API returned 400: Demo user not found", resp.Error)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_ReportedFailure() {
	suite.invoker.On("Invoke", mock.Anything, mock.Anything).
		Return(&dto.ResetFunctionReply{StatusCode: http.StatusOK}, nil).Once()

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorAPI})

	suite.Require().Error(err)
	suite.Equal("Reset operation failed", resp.Error)
}

func (suite *ResetOrchestratorServiceTestSuite) TestTrigger_TransportError() {
	suite.invoker.On("Invoke", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	resp, err := suite.newService().Trigger(context.Background(), portssvc.TriggerRequest{Actor: domain.ActorAPI, Force: true})

	suite.Require().ErrorIs(err, apperrors.ErrDownstream)
	suite.Contains(resp.Error, "connection refused")
}

func (suite *ResetOrchestratorServiceTestSuite) TestStatus_Healthy() {
	last := &domain.ResetLog{ResetLogID: "log-1", Success: true, TriggeredBy: domain.ActorScheduled}
	suite.invoker.On("Invoke", mock.Anything, dto.ResetFunctionRequest{TriggeredBy: "api", DryRun: true}).
		Return(&dto.ResetFunctionReply{StatusCode: http.StatusForbidden}, nil).Once()
	suite.logReader.On("FindLastResetLog", mock.Anything).Return(last, nil).Once()

	status, err := suite.newService().Status(context.Background())

	suite.Require().NoError(err)
	suite.Equal(dto.HealthHealthy, status.Health.Overall)
	suite.Empty(status.Health.Issues)
	suite.Require().NotNil(status.ResetFunction)
	suite.True(status.ResetFunction.Available)
	suite.True(status.ResetFunction.Accessible)
	suite.Require().NotNil(status.LastReset)
	suite.True(status.LastReset.Available)
	suite.Equal(last, status.LastReset.Log)
	suite.Require().NotNil(status.Schedule)
	suite.Equal("2026-10-15T00:00:00.000Z", status.Schedule.NextReset)
	suite.Equal((13*time.Hour + 30*time.Minute).Milliseconds(), status.Schedule.TimeUntilNext)
	suite.Equal("0 0 * * *", status.Schedule.CronExpression)
	suite.True(status.System.CronConfigured)
}

func (suite *ResetOrchestratorServiceTestSuite) TestStatus_FunctionNotDeployed() {
	suite.invoker.On("Invoke", mock.Anything, mock.Anything).
		Return(&dto.ResetFunctionReply{StatusCode: http.StatusNotFound}, nil).Once()
	suite.logReader.On("FindLastResetLog", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	status, err := suite.newService().Status(context.Background())

	suite.Require().NoError(err)
	suite.Equal(dto.HealthDegraded, status.Health.Overall)
	suite.Equal([]string{services.IssueFunctionNotFound}, status.Health.Issues)
	suite.False(status.ResetFunction.Available)
	suite.False(status.LastReset.Available)
}

func (suite *ResetOrchestratorServiceTestSuite) TestStatus_Unconfigured() {
	suite.cfg.SupabaseURL = ""
	suite.cfg.ServiceRoleKey = ""
	suite.cfg.ResetEnabled = false
	suite.logReader.On("FindLastResetLog", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	status, err := suite.newService().Status(context.Background())

	suite.Require().NoError(err)
	suite.Equal(dto.HealthDegraded, status.Health.Overall)
	suite.Equal([]string{
		services.IssueURLMissing,
		services.IssueServiceKeyMissing,
		services.IssueResetDisabled,
	}, status.Health.Issues)
	suite.Nil(status.ResetFunction)
	suite.Nil(status.Schedule)
	suite.invoker.AssertNotCalled(suite.T(), "Invoke", mock.Anything, mock.Anything)
}

func (suite *ResetOrchestratorServiceTestSuite) TestStatus_ProbeTransportError() {
	suite.invoker.On("Invoke", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: timeout")).Once()
	suite.logReader.On("FindLastResetLog", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	status, err := suite.newService().Status(context.Background())

	suite.Require().NoError(err)
	suite.Equal([]string{services.IssueFunctionInaccessible}, status.Health.Issues)
	suite.Equal("dial tcp: timeout", status.ResetFunction.Error)
}

func TestResetOrchestratorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResetOrchestratorServiceTestSuite))
}

func TestStatus_NextResetAlwaysInFuture(t *testing.T) {
	for _, interval := range []domain.ResetInterval{domain.IntervalHourly, domain.IntervalDaily, domain.IntervalWeekly} {
		cfg := &config.Config{ResetEnabled: true, ResetInterval: interval, ResetLocation: time.UTC}
		svc := services.NewResetOrchestratorService(cfg, new(MockResetFunctionInvoker),
			services.WithOrchestratorClock(func() time.Time { return fixedNow }))

		status, err := svc.Status(context.Background())

		assert.NoError(t, err)
		if assert.NotNil(t, status.Schedule, interval) {
			assert.Greater(t, status.Schedule.TimeUntilNext, int64(0), interval)
		}
	}
}
