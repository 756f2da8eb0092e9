package kafka

import (
	"github.com/IBM/sarama"
)

const BookRatingTopic = "book-rating"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (cfg Config) Enabled() bool {
	return len(cfg.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
