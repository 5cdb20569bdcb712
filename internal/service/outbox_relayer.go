package service

import (
	"context"
	"time"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sender 负责把一条关注事件投递出去
type Sender func(ctx context.Context, ob *model.FollowOutbox) error

// OutboxRelayer 定时把待投递的关注事件交给 Sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		pkg.Log.Error("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// LogSender 没配 kafka 时的兜底 sender，只打日志
func LogSender(ctx context.Context, ob *model.FollowOutbox) error {
	pkg.Log.Info("outbox send",
		zap.String("type", ob.EventType),
		zap.Uint64("user", ob.UserID),
		zap.Uint64("author", ob.AuthorID),
	)
	return nil
}

// KafkaSender 把事件发到 kafka，key 保证同一关注对有序
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.FollowOutbox) error {
		return producer.Send(ctx, pkg.FollowEventKey(ob.UserID, ob.AuthorID), []byte(ob.Payload))
	}
}
