package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Notifier delivers one alert message to an outbound sink.
type Notifier interface {
	Notify(message string)
}

// WebhookNotifier posts alert messages to a webhook URL as {"content": "..."}.
// Delivery failures are swallowed; the sink is best-effort by design of the
// log path (alerting must never fail a request).
type WebhookNotifier struct {
	url    string
	prefix string
	client *http.Client
}

// NewWebhookNotifier builds a notifier for the given URL. Prefix is prepended
// to every message to identify the sending service.
func NewWebhookNotifier(url, prefix string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		prefix: prefix,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify sends the message. Safe for concurrent use.
func (n *WebhookNotifier) Notify(message string) {
	if n.prefix != "" {
		message = fmt.Sprintf("%s : %s", n.prefix, message)
	}
	body, err := json.Marshal(map[string]string{"content": message})
	if err != nil {
		return
	}
	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return
	}
	resp.Body.Close()
}

// dedup tracks when each message text was last alerted on. Shared across
// logger clones so suppression stays process-wide.
type dedup struct {
	mu     sync.Mutex
	seen   map[string]time.Time
	window time.Duration
	now    func() time.Time
}

// shouldSend reports whether the message may be sent now and records it.
// Expired entries are pruned on each call so the map cannot grow unbounded.
func (d *dedup) shouldSend(message string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for msg, last := range d.seen {
		if now.Sub(last) >= d.window {
			delete(d.seen, msg)
		}
	}

	if _, ok := d.seen[message]; ok {
		return false
	}
	d.seen[message] = now
	return true
}

// alertCore wraps a zapcore.Core and forwards warn+ entries to a Notifier,
// suppressing repeats of the same message text within the dedup window.
type alertCore struct {
	zapcore.Core

	notifier Notifier
	dedup    *dedup
}

// NewAlertCore wraps core with webhook alerting on warn and above.
func NewAlertCore(core zapcore.Core, notifier Notifier, window time.Duration) zapcore.Core {
	if window <= 0 {
		window = time.Hour
	}
	return &alertCore{
		Core:     core,
		notifier: notifier,
		dedup: &dedup{
			seen:   make(map[string]time.Time),
			window: window,
			now:    time.Now,
		},
	}
}

func (c *alertCore) With(fields []zapcore.Field) zapcore.Core {
	return &alertCore{
		Core:     c.Core.With(fields),
		notifier: c.notifier,
		dedup:    c.dedup,
	}
}

func (c *alertCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Core.Enabled(ent.Level) {
		ce = ce.AddCore(ent, c)
	}
	return ce
}

func (c *alertCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if ent.Level >= zapcore.WarnLevel && c.dedup.shouldSend(ent.Message) {
		go c.notifier.Notify(ent.Message)
	}
	return c.Core.Write(ent, fields)
}
