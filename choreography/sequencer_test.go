package choreography

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/calvinmclean/animahead"
	"github.com/calvinmclean/animahead/motion"
)

type trace struct {
	events []string
}

func (tr *trace) add(format string, args ...any) {
	tr.events = append(tr.events, fmt.Sprintf(format, args...))
}

type fakeMotion struct{ tr *trace }

func (m fakeMotion) Home() { m.tr.add("home") }
func (m fakeMotion) Pan(s animahead.Side) { m.tr.add("pan %v", s) }
func (m fakeMotion) Nod(b motion.Blinker) {
	m.tr.add("nod")
	b.Blink()
}

type fakeEyes struct{ tr *trace }

func (e fakeEyes) Blink() { e.tr.add("blink") }
func (e fakeEyes) Sleep() { e.tr.add("closed") }
func (e fakeEyes) FullRoutine() { e.tr.add("eyes") }

type fakeSplash struct {
	tr  *trace
	err error
}

func (s fakeSplash) ShowSplash(lines ...string) error {
	s.tr.add("splash %s", strings.Join(lines, "/"))
	return s.err
}

func newTestSequencer(splashErr error) (*Sequencer, *trace, *bytes.Buffer) {
	tr := &trace{}
	var buf bytes.Buffer
	sleeper := animahead.SleeperFunc(func(d time.Duration) { tr.add("sleep %v", d) })
	s := New(fakeMotion{tr}, fakeEyes{tr}, fakeSplash{tr, splashErr}, sleeper, animahead.NewLogger(&buf))
	return s, tr, &buf
}

func TestStart(t *testing.T) {
	s, tr, _ := newTestSequencer(nil)

	s.Start()

	expected := []string{"home", "splash ANIMATRONIC/HEAD DEMO", "sleep 3s", "closed"}
	if strings.Join(tr.events, ",") != strings.Join(expected, ",") {
		t.Errorf("expected=%q, got=%q", expected, tr.events)
	}
}

func TestStartSplashError(t *testing.T) {
	s, tr, buf := newTestSequencer(errors.New("display missing"))

	s.Start()

	if !strings.Contains(buf.String(), "error showing splash: display missing") {
		t.Errorf("expected logged error, got %q", buf.String())
	}
	expected := []string{"home", "splash ANIMATRONIC/HEAD DEMO", "sleep 3s", "closed"}
	if strings.Join(tr.events, ",") != strings.Join(expected, ",") {
		t.Errorf("splash hold and closed eyes should still happen, expected=%q, got=%q", expected, tr.events)
	}
}

func TestCycle(t *testing.T) {
	s, tr, _ := newTestSequencer(nil)

	s.Cycle()

	expected := []string{
		"pan Left", "nod", "blink", "eyes",
		"pan Right", "nod", "blink", "eyes",
	}
	if strings.Join(tr.events, ",") != strings.Join(expected, ",") {
		t.Errorf("expected=%q, got=%q", expected, tr.events)
	}
}

func TestStepLogsStages(t *testing.T) {
	s, _, buf := newTestSequencer(nil)

	s.Step(animahead.SideRight)

	expected := "[-] stage=Pan side=Right\n[-] stage=Nod side=Right\n[-] stage=Eyes side=Right\n"
	if buf.String() != expected {
		t.Errorf("expected=%q, got=%q", expected, buf.String())
	}
}
