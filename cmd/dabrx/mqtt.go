package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/saxhorn/dabrx/internal/ensemble"
	"github.com/saxhorn/dabrx/internal/mot"
	"github.com/saxhorn/dabrx/internal/stream"
)

// mqttPublisher pushes decoded metadata to a broker: dynamic labels and
// slide announcements per sub-channel, plus the retained service
// directory. A nil publisher is a no-op so callers need no guards.
type mqttPublisher struct {
	client mqtt.Client
	prefix string
	log    *slog.Logger
}

func mqttClientID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return "dabrx_" + hex.EncodeToString(b)
}

func newMQTTPublisher(cfg MQTTConfig) (*mqttPublisher, error) {
	log := slog.Default().With("component", "mqtt")

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(mqttClientID())
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Info("connected to broker", "broker", cfg.Broker)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warn("connection lost", "error", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to broker: %w", token.Error())
	}
	return &mqttPublisher{client: client, prefix: cfg.TopicPrefix, log: log}, nil
}

func (p *mqttPublisher) publish(topic string, retain bool, v any) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		p.log.Warn("marshalling payload", "topic", topic, "error", err)
		return
	}
	token := p.client.Publish(p.prefix+"/"+topic, 0, retain, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			p.log.Debug("publish failed", "topic", topic, "error", token.Error())
		}
	}()
}

// PublishLabel sends a dynamic label, retained so subscribers pick up
// the current programme text immediately.
func (p *mqttPublisher) PublishLabel(subchannel uint8, label stream.Label) {
	p.publish(fmt.Sprintf("subchannel/%d/label", subchannel), true, label)
}

// PublishSlide announces a slideshow image. The body stays on the
// WebSocket path; the broker only carries the metadata.
func (p *mqttPublisher) PublishSlide(subchannel uint8, slide mot.Slide) {
	p.publish(fmt.Sprintf("subchannel/%d/slide", subchannel), false, map[string]any{
		"transportId": slide.TransportID,
		"name":        slide.Name,
		"mime":        slide.MIME,
		"bytes":       len(slide.Data),
	})
}

// PublishDirectory retains the current service directory.
func (p *mqttPublisher) PublishDirectory(services []ensemble.Service) {
	p.publish("directory", true, services)
}

func (p *mqttPublisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(250)
}
