// Package journal replays a newline-delimited JSON journal of session actions.
package journal

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/actions"
	"github.com/wellness-hub/wellness/internal/consumer"
	"github.com/wellness-hub/wellness/internal/service"
	"github.com/wellness-hub/wellness/internal/storage"
)

var log = logrus.WithField("layer", "consumer").WithField("package", "journal")

const maxLineSize = 64 * 1024

// Stats is reported by Ping.
type Stats struct {
	Applied int  `json:"applied"`
	Skipped int  `json:"skipped"`
	Done    bool `json:"done"`
}

type journal struct {
	r io.Reader
	s service.Service

	mu    sync.Mutex
	stats Stats
}

// New returns a consumer applying actions read from r to s.
func New(r io.Reader, s service.Service) consumer.Consumer {
	return &journal{
		r: r,
		s: s,
	}
}

func (j *journal) Name() string {
	return "journal"
}

func (j *journal) Ping(_ context.Context) (interface{}, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.stats, nil
}

// Run applies every line of the journal in order. An action rejected as a no-op is logged and skipped,
// any other failure stops the replay.
func (j *journal) Run(ctx context.Context) error {
	sc := bufio.NewScanner(j.r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		if err := j.processLine(ctx, line); err != nil {
			if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, storage.ErrNotFound) {
				log.WithField("line", n).WithError(err).Warn("skip action")
				j.record(false)
				continue
			}
			return fmt.Errorf("failed to process line %d: %w", n, err)
		}
		j.record(true)
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	j.mu.Lock()
	j.stats.Done = true
	log.WithField("applied", j.stats.Applied).WithField("skipped", j.stats.Skipped).Info("journal replayed")
	j.mu.Unlock()

	return nil
}

func (j *journal) processLine(ctx context.Context, line []byte) error {
	var a actions.Action

	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err.Error())
	}

	_, err := actions.Apply(ctx, j.s, a)
	return err
}

func (j *journal) record(applied bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if applied {
		j.stats.Applied++
	} else {
		j.stats.Skipped++
	}
}
