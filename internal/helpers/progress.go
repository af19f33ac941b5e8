package helpers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

type ProgressBar struct {
	Set   func(int)
	Add   func(int)
	Close func()
}

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if !IsNil(err) {
		return 80
	}
	return MaxInt(80, MinInt(120, width))
}

func unitForDuration(d time.Duration) time.Duration {
	if d < time.Microsecond {
		return time.Nanosecond
	}
	if d < time.Millisecond {
		return time.Microsecond
	}
	if d < time.Second {
		return time.Millisecond
	}
	if d < time.Minute {
		return time.Second
	}
	return time.Minute
}

func CreateProgressBar(total int, label string) ProgressBar {
	return CreateProgressBarWithWriter(os.Stdout, total, label)
}

// CreateProgressBarWithWriter prints a line to w whenever the bar changes,
// backing off exponentially so long runs stay readable.
func CreateProgressBarWithWriter(w io.Writer, total int, label string) ProgressBar {
	lock := sync.Mutex{}
	value := 0

	startTime := time.Now()
	updateDuration := time.Millisecond * 200

	var update = func(forceUpdate bool) {
		if time.Since(startTime) <= updateDuration && !forceUpdate {
			return
		}
		updateDuration *= 2

		elapsed := time.Since(startTime)
		if value > total {
			value = total
		} else if value == 0 || total == 0 {
			return
		}

		perSecond := int64(float64(value) / elapsed.Seconds())
		percent := float64(value) / float64(total)
		expectedFinish := time.Duration(float64(elapsed) / percent)
		unit := unitForDuration(elapsed)

		prefix := fmt.Sprintf("%s %3d%% ", label, int(percent*100))
		suffix := fmt.Sprintf(" %v => %v @ %v/s", elapsed.Round(unit), expectedFinish.Round(unit), humanize.Comma(perSecond))

		totalProgressLen := MaxInt(termWidth()-RuneCountIgnoringAnsi(prefix)-RuneCountIgnoringAnsi(suffix), 0)
		currentProgressLen := MinInt(MaxInt(int(float64(totalProgressLen)*percent), 0), totalProgressLen)
		remainingProgressLen := totalProgressLen - currentProgressLen

		fmt.Fprintf(w, "%s%s%s%s\n", prefix, strings.Repeat("=", currentProgressLen), strings.Repeat(" ", remainingProgressLen), suffix)
	}

	return ProgressBar{
		func(i int) {
			lock.Lock()
			defer lock.Unlock()
			value = i
			update(false)
		},
		func(i int) {
			lock.Lock()
			defer lock.Unlock()
			value += i
			update(false)
		}, func() {
			lock.Lock()
			defer lock.Unlock()
			update(true)
		},
	}
}
