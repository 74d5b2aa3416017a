package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	assert.Nil(t, Brokers(), "unset means fan-out stays off")

	t.Setenv("KAFKA_BROKERS", "kafka-broker:9092")
	assert.Equal(t, []string{"kafka-broker:9092"}, Brokers())

	t.Setenv("KAFKA_BROKERS", " b1:9092 , b2:9092 ,")
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, Brokers())
}

func TestTopicFromEnv(t *testing.T) {
	t.Setenv("SPLITS_KAFKA_TOPIC", "")
	assert.Equal(t, DefaultSplitsTopic, TopicFromEnv("SPLITS_KAFKA_TOPIC", DefaultSplitsTopic))

	t.Setenv("SPLITS_KAFKA_TOPIC", "custom.topic")
	assert.Equal(t, "custom.topic", TopicFromEnv("SPLITS_KAFKA_TOPIC", DefaultSplitsTopic))
}
