// Package mqtt publishes lock state changes to an MQTT broker.
package mqtt

import (
	"fmt"
	"strings"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/utils"
	"github.com/pkg/errors"
)

const (
	// Logger system.
	logSystem = "mqtt"

	connectTimeout    = 10 * time.Second
	publishTimeout    = 5 * time.Second
	disconnectQuiesce = 250

	statusOnline  = "online"
	statusOffline = "offline"
)

// Subset of the paho client used by the publisher.
type mqttClient interface {
	Connect() pahomqtt.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
}

// ConstructPublisher has data required for a new publisher.
type ConstructPublisher struct {
	Settings *providers.MQTTSettings
	FanOut   common.IFanOutProvider
	Logger   common.ILoggerProvider

	client mqttClient
}

// Publisher mirrors every lock update into retained topics.
type Publisher struct {
	client   mqttClient
	settings *providers.MQTTSettings
	fanOut   common.IFanOutProvider
	logger   common.ILoggerProvider

	sync.Mutex
	subID    int64
	stopped  bool
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewPublisher connects to the broker and starts publishing.
func NewPublisher(ctor *ConstructPublisher) (*Publisher, error) {
	p := &Publisher{
		client:   ctor.client,
		settings: ctor.Settings,
		fanOut:   ctor.FanOut,
		logger:   ctor.Logger,
	}

	if nil == p.client {
		p.client = pahomqtt.NewClient(p.clientOptions())
	}

	token := p.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, errors.Errorf("failed to connect to %s: timeout after %v", p.settings.Broker, connectTimeout)
	}

	if err := token.Error(); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", p.settings.Broker)
	}

	p.publish(p.statusTopic(), statusOnline, true)

	p.Lock()
	id, updates := p.fanOut.SubscribeLockUpdates()
	p.subID = id
	p.Unlock()
	p.wg.Add(1)
	go p.listen(updates)

	p.logger.Info("Connected to MQTT broker", common.LogSystemToken, logSystem, common.LogURLToken, p.settings.Broker)
	return p, nil
}

// Stop un-subscribes from updates and disconnects.
func (p *Publisher) Stop() {
	p.stopOnce.Do(func() {
		p.Lock()
		p.stopped = true
		id := p.subID
		p.Unlock()

		p.fanOut.UnSubscribeLockUpdates(id)
		p.wg.Wait()

		p.publish(p.statusTopic(), statusOffline, true)
		p.client.Disconnect(disconnectQuiesce)
	})
}

// Builds paho options.
func (p *Publisher) clientOptions() *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(p.settings.Broker)
	opts.SetClientID(p.settings.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetWill(p.statusTopic(), statusOffline, p.settings.QoS, true)

	if "" != p.settings.Username {
		opts.SetUsername(p.settings.Username)
		opts.SetPassword(p.settings.Password)
	}

	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		p.logger.Warn("Lost connection to MQTT broker", common.LogSystemToken, logSystem,
			common.LogErrorToken, err.Error())
	})

	return opts
}

// Publishes updates until publisher is stopped.
// Subscription closed by fan-out is renewed.
func (p *Publisher) listen(updates chan *common.MsgLockUpdate) {
	defer p.wg.Done()
	for {
		for msg := range updates {
			for prop, value := range msg.State {
				p.publish(Topic(p.settings.TopicPrefix, msg.ID, prop), Payload(value), p.settings.Retained)
			}
		}

		p.Lock()
		if p.stopped {
			p.Unlock()
			return
		}

		p.logger.Warn("Lock updates subscription was dropped, re-subscribing", common.LogSystemToken, logSystem)
		p.subID, updates = p.fanOut.SubscribeLockUpdates()
		p.Unlock()
	}
}

// Publishes a single message.
func (p *Publisher) publish(topic string, payload string, retained bool) {
	token := p.client.Publish(topic, p.settings.QoS, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		p.logger.Warn("MQTT publish timed out", common.LogSystemToken, logSystem, common.LogTopicToken, topic)
		return
	}

	if err := token.Error(); err != nil {
		p.logger.Error("Failed to publish MQTT message", err, common.LogSystemToken, logSystem,
			common.LogTopicToken, topic)
	}
}

// Returns bridge availability topic.
func (p *Publisher) statusTopic() string {
	return fmt.Sprintf("%s/status", strings.TrimRight(p.settings.TopicPrefix, "/"))
}

// Topic returns topic of the lock property.
// Lock ID is normalized since it can contain topic wildcards.
func Topic(prefix string, lockID string, prop enums.Property) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(prefix, "/"), utils.NormalizeDeviceName(lockID), prop.String())
}

// Payload formats property value.
func Payload(value interface{}) string {
	return fmt.Sprint(value)
}
