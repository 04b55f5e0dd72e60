package logging

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	done     chan struct{}
}

func newRecordingNotifier(expected int) *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, expected)}
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
	n.done <- struct{}{}
}

func (n *recordingNotifier) wait(t *testing.T, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		select {
		case <-n.done:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notification %d", i+1)
		}
	}
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

func newTestLogger(notifier Notifier, window time.Duration) (*zap.Logger, *alertCore) {
	base, _ := observer.New(zapcore.DebugLevel)
	core := NewAlertCore(base, notifier, window).(*alertCore)
	return zap.New(core), core
}

func TestAlertCoreForwardsWarnings(t *testing.T) {
	notifier := newRecordingNotifier(2)
	logger, _ := newTestLogger(notifier, time.Hour)

	logger.Warn("store unreachable")
	logger.Error("index creation failed")
	notifier.wait(t, 2)

	assert.ElementsMatch(t, []string{"store unreachable", "index creation failed"}, notifier.all())
}

func TestAlertCoreIgnoresInfo(t *testing.T) {
	notifier := newRecordingNotifier(1)
	logger, _ := newTestLogger(notifier, time.Hour)

	logger.Info("account created")
	logger.Debug("request handled")

	select {
	case <-notifier.done:
		t.Fatal("info entry must not be forwarded")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAlertCoreDeduplicatesWithinWindow(t *testing.T) {
	notifier := newRecordingNotifier(2)
	logger, core := newTestLogger(notifier, time.Hour)

	current := time.Unix(1700000000, 0)
	core.dedup.now = func() time.Time { return current }

	logger.Warn("store unreachable")
	notifier.wait(t, 1)

	// same message inside the window is suppressed
	current = current.Add(30 * time.Minute)
	logger.Warn("store unreachable")

	// after the window it goes out again
	current = current.Add(31 * time.Minute)
	logger.Warn("store unreachable")
	notifier.wait(t, 1)

	require.Len(t, notifier.all(), 2)
}

func TestAlertCoreDedupSurvivesWith(t *testing.T) {
	notifier := newRecordingNotifier(1)
	logger, _ := newTestLogger(notifier, time.Hour)

	logger.Warn("store unreachable")
	notifier.wait(t, 1)

	child := logger.With(zap.String("component", "repository"))
	child.Warn("store unreachable")

	select {
	case <-notifier.done:
		t.Fatal("child logger must share the dedup window")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDedupPrunesExpiredEntries(t *testing.T) {
	d := &dedup{
		seen:   make(map[string]time.Time),
		window: time.Hour,
	}
	current := time.Unix(1700000000, 0)
	d.now = func() time.Time { return current }

	require.True(t, d.shouldSend("a"))
	require.True(t, d.shouldSend("b"))

	current = current.Add(2 * time.Hour)
	require.True(t, d.shouldSend("c"))
	assert.Len(t, d.seen, 1, "expired entries are pruned")
}
