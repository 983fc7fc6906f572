package position

import (
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"guardDuty/internal/config"
)

// MessageHandler receives raw device reports.
type MessageHandler func(topic string, payload []byte)

// MQTTSource subscribes to device position topics on an MQTT broker.
type MQTTSource struct {
	client mqtt.Client
	cfg    config.MQTTConfig
	logger *slog.Logger
}

func NewMQTTSource(cfg config.MQTTConfig, logger *slog.Logger) (*MQTTSource, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("mqtt connection lost", slog.Any("error", err))
	})

	client := mqtt.NewClient(opts)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	logger.Info("Connected to MQTT broker", slog.String("broker", cfg.Broker))

	return &MQTTSource{client: client, cfg: cfg, logger: logger}, nil
}

func (s *MQTTSource) Subscribe(handler MessageHandler) error {
	token := s.client.Subscribe(s.cfg.Topic, s.cfg.QoS, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", s.cfg.Topic, token.Error())
	}
	s.logger.Info("subscribed to device positions", slog.String("topic", s.cfg.Topic))
	return nil
}

func (s *MQTTSource) Close() {
	if token := s.client.Unsubscribe(s.cfg.Topic); token.Wait() && token.Error() != nil {
		s.logger.Warn("mqtt unsubscribe failed", slog.Any("error", token.Error()))
	}
	s.client.Disconnect(250)
}
