package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tklauser/go-sysconf"
)

// runClock snapshots wall and CPU time around a RUN so the STATS
// report shows deltas, not process totals.
type runClock struct {
	start time.Time
	utime int64
	stime int64
}

func startClock() runClock {
	u, s := cpuTimes()
	return runClock{start: time.Now(), utime: u, stime: s}
}

func (c runClock) report() string {
	u, s := cpuTimes()
	return fmt.Sprintf("CPU usage: elapsed = %s / user = %s / system = %s",
		formatCPUTime(int64(time.Since(c.start).Seconds())),
		formatCPUTime(u-c.utime), formatCPUTime(s-c.stime))
}

// cpuTimes reads user and system CPU seconds from /proc/self/stat,
// scaled by the clock tick rate. Failures degrade to zeros; STATS is a
// convenience, not a contract.
func cpuTimes() (utime, stime int64) {
	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || clktck == 0 {
		return 0, 0
	}
	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0
	}
	fields := strings.Fields(string(contents))
	if len(fields) < 15 {
		return 0, 0
	}
	u, err := strconv.ParseInt(fields[13], 10, 64)
	if err != nil {
		return 0, 0
	}
	s, err := strconv.ParseInt(fields[14], 10, 64)
	if err != nil {
		return 0, 0
	}
	return u / clktck, s / clktck
}

func formatCPUTime(t int64) string {
	var h, m int64
	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}
	if t >= 60 {
		m = t / 60
		t = t % 60
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}
