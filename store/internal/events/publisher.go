package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	cb "github.com/Astemirdum/book-store/pkg/circuit_breaker"
	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Publisher sends rating changes to kafka, keyed by book id so that events
// of one book stay ordered within a partition. Sends are skipped while the
// breaker is open.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	breaker  *cb.Breaker
	log      *zap.Logger
}

var breakerConfig = cb.Config{
	Window:       10,
	FailureRatio: 0.5,
	Cooldown:     30 * time.Second,
	Probes:       2,
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		breaker:  cb.New(breakerConfig),
		log:      log.Named("publisher"),
	}
}

func (p *Publisher) PublishRating(_ context.Context, ev model.RatingEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.BookID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	var (
		partition int32
		offset    int64
	)
	err = p.breaker.Call(func() error {
		partition, offset, err = p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "send rating event")
	}
	p.log.Debug("rating event sent",
		zap.Int64("book_id", ev.BookID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
