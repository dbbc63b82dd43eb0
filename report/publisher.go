package report

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/katalvlaran/waypath/route"
)

// DefaultTopic is the MQTT topic planned routes publish to when the caller
// does not choose one.
const DefaultTopic = "waypath/route"

// Publisher hands planned routes to an MQTT broker as retained JSON
// messages, so a vehicle or ground station joining later still receives the
// latest plan.
type Publisher struct {
	client mqtt.Client
	topic  string
	qos    byte
	retain bool
}

// NewPublisher wraps an MQTT client. An empty topic selects DefaultTopic.
// The client is used as given; connecting it is the caller's concern.
func NewPublisher(client mqtt.Client, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		client: client,
		topic:  topic,
		qos:    1, // at-least-once: a dropped plan is worse than a duplicate
		retain: true,
	}
}

// RouteMessage is the wire format for a published route.
type RouteMessage struct {
	Name      string       `json:"name,omitempty"`
	Points    [][2]float64 `json:"points"`
	Length    float64      `json:"length"`
	Closed    bool         `json:"closed"`
	Hazards   int          `json:"hazards"`
	PlannedAt int64        `json:"planned_at"`
}

// PublishRoute serializes the route and publishes it, blocking until the
// broker acknowledges or the client reports an error.
func (p *Publisher) PublishRoute(name string, r route.Route) error {
	if p.client == nil || !p.client.IsConnected() {
		return fmt.Errorf("mqtt client not connected")
	}

	msg := RouteMessage{
		Name:      name,
		Points:    make([][2]float64, len(r.Points)),
		Length:    r.Length(),
		Closed:    r.IsClosed(),
		Hazards:   len(r.Hazards),
		PlannedAt: time.Now().Unix(),
	}
	for i, pt := range r.Points {
		msg.Points[i] = [2]float64{pt.X, pt.Y}
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling route message: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, p.retain, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing route to %s: %w", p.topic, err)
	}
	return nil
}
