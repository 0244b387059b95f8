package sim

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const maxLogLines = 200

// logView collects the Logger output so it can be shown in the window
type logView struct {
	mtx     sync.Mutex
	partial string
	lines   []string
	onLine  func(string)
}

func (l *logView) Write(p []byte) (int, error) {
	l.mtx.Lock()
	text := l.partial + string(p)
	parts := strings.Split(text, "\n")
	l.partial = parts[len(parts)-1]

	complete := parts[:len(parts)-1]
	l.lines = append(l.lines, complete...)
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
	onLine := l.onLine
	l.mtx.Unlock()

	if onLine != nil {
		for _, line := range complete {
			onLine(line)
		}
	}
	return len(p), nil
}

// Text returns the kept lines
func (l *logView) Text() string {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return strings.Join(l.lines, "\n")
}

func (l *logView) accordion(onLine func(string)) *widget.Accordion {
	logContent := widget.NewLabel("")
	logScroll := container.NewVScroll(logContent)
	logScroll.SetMinSize(fyne.NewSize(300, 100))

	l.mtx.Lock()
	l.onLine = func(line string) {
		onLine(line)
		fyne.Do(func() {
			logContent.SetText(l.Text())
			logScroll.ScrollToBottom()
		})
	}
	l.mtx.Unlock()

	return widget.NewAccordion(
		widget.NewAccordionItem("Logs", logScroll),
	)
}
