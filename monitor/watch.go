package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/calvinmclean/animahead"
)

// Watch copies log lines from r to out. Stage lines are prefixed with the cycle number, and a warning is written
// when a stage arrives out of order. It returns when r is exhausted or ctx is done
func Watch(ctx context.Context, r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)

	cycle := 1
	expected := animahead.StagePan
	expectedSide := animahead.SideLeft
	synced := false

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		ev, ok := ParseLine(line)
		if !ok || ev.Stage == animahead.StageUnknown {
			fmt.Fprintln(out, ev.Raw)
			continue
		}

		// the first stage seen may be anywhere in the script
		if synced && (ev.Stage != expected || ev.Side != expectedSide) {
			fmt.Fprintf(out, "unexpected stage: expected=%s/%s, got=%s/%s\n", expected, expectedSide, ev.Stage, ev.Side)
		}
		synced = true

		fmt.Fprintf(out, "#%d %s\n", cycle, ev.Raw)

		expected = ev.Stage.Next()
		expectedSide = ev.Side
		if ev.Stage == animahead.StageEyes {
			expectedSide = otherSide(ev.Side)
			if ev.Side == animahead.SideRight {
				cycle++
			}
		}
	}

	return scanner.Err()
}

func otherSide(s animahead.Side) animahead.Side {
	if s == animahead.SideLeft {
		return animahead.SideRight
	}
	return animahead.SideLeft
}
