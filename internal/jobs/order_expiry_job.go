package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultExpiryInterval is how often PLACED orders are checked.
const DefaultExpiryInterval = time.Minute

// OrderExpiryJob cancels orders that stay PLACED (unpaid) for longer than
// maxAge.
type OrderExpiryJob struct {
	placed   *queries.ListOrdersByStatusQueryHandler
	cancel   *commands.CancelOrderCommandHandler
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewOrderExpiryJob(
	placed *queries.ListOrdersByStatusQueryHandler,
	cancel *commands.CancelOrderCommandHandler,
	maxAge time.Duration,
	logger *zap.Logger,
) (*OrderExpiryJob, error) {
	if placed == nil {
		return nil, errs.NewValueIsRequiredError("placed")
	}
	if cancel == nil {
		return nil, errs.NewValueIsRequiredError("cancel")
	}
	if maxAge <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("maxAge", maxAge, "1ns", "unbounded")
	}

	logger = logger.With(zap.String("component", "order_expiry_job"))
	return &OrderExpiryJob{
		placed:   placed,
		cancel:   cancel,
		maxAge:   maxAge,
		interval: DefaultExpiryInterval,
		now:      func() time.Time { return time.Now().UTC() },
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger.Sugar()}),
			cron.SkipIfStillRunning(cronLogger{logger.Sugar()}),
		)),
		logger: logger,
	}, nil
}

// RunOnce lists every PLACED order and cancels the expired ones. Orders that
// move on while the run is in progress are skipped.
func (j *OrderExpiryJob) RunOnce(ctx context.Context) (int, error) {
	q, err := queries.NewListOrdersByStatusQuery(order.Placed)
	if err != nil {
		return 0, err
	}
	orders, err := j.placed.Handle(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("list placed orders: %w", err)
	}

	deadline := j.now().Add(-j.maxAge)
	cancelled := 0
	for _, o := range orders {
		if o.Status() != order.Placed || !o.CreatedAt().Before(deadline) {
			continue
		}

		cmd, err := commands.NewCancelOrderCommand(o.ID())
		if err != nil {
			return cancelled, err
		}
		_, err = j.cancel.Handle(ctx, cmd)
		switch {
		case err == nil:
			cancelled++
			j.logger.Info("cancelled unpaid order",
				zap.String("order_id", o.ID().String()),
				zap.Time("created_at", o.CreatedAt()),
			)
		case errors.Is(err, commands.ErrConcurrentModification),
			errors.Is(err, order.ErrIllegalCancellation),
			errors.Is(err, errs.ErrObjectNotFound):
			j.logger.Debug("order moved on before expiry", zap.String("order_id", o.ID().String()), zap.Error(err))
		default:
			return cancelled, fmt.Errorf("cancel order %s: %w", o.ID(), err)
		}
	}
	return cancelled, nil
}

// Start schedules RunOnce every interval.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.interval)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("order expiry run failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order expiry job started",
		zap.Duration("interval", j.interval),
		zap.Duration("max_age", j.maxAge),
	)
	return nil
}

// Stop waits for a running scan to finish.
func (j *OrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("order expiry job stopped")
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
