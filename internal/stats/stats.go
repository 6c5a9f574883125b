package stats

import (
	"runtime"
	"time"

	"scene-engine/internal/logger"
)

// updateInterval: only recompute and log stats every N frames to keep the
// per-frame cost near zero.
const updateInterval = 120

// Stats tracks frame timing, draw counts, and heap usage for the render loop.
// Reporting is off by default; enable it with SetLogging.
type Stats struct {
	log        *logger.Logger
	logging    bool
	frameCount uint64
	lastReport time.Time
	lastDraws  int
	memStats   runtime.MemStats
}

// New returns a Stats tracker that reports through the given logger.
func New(log *logger.Logger) *Stats {
	return &Stats{log: log, lastReport: time.Now()}
}

// SetLogging sets whether per-interval frame reports are written to the log.
func (s *Stats) SetLogging(on bool) {
	s.logging = on
}

// Frames returns the number of frames counted so far.
func (s *Stats) Frames() uint64 {
	return s.frameCount
}

// EndFrame records one completed frame. totalDraws is the cumulative draw
// count from the scene; the per-interval report derives the delta. Every
// updateInterval frames a summary line is logged: average FPS over the
// interval, draws per frame, and heap in use.
func (s *Stats) EndFrame(totalDraws int) {
	s.frameCount++
	if !s.logging || s.frameCount%updateInterval != 0 {
		return
	}

	now := time.Now()
	elapsed := now.Sub(s.lastReport).Seconds()
	fps := float64(updateInterval)
	if elapsed > 0 {
		fps = float64(updateInterval) / elapsed
	}

	drawsPerFrame := float64(totalDraws-s.lastDraws) / float64(updateInterval)
	runtime.ReadMemStats(&s.memStats)
	heapMiB := float64(s.memStats.HeapAlloc) / (1024 * 1024)

	s.log.Infof("frame %d: %.1f fps, %.1f draws/frame, heap %.2f MiB",
		s.frameCount, fps, drawsPerFrame, heapMiB)

	s.lastReport = now
	s.lastDraws = totalDraws
}
