package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/hashmap"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-avl/observer"
	"github.com/cryptonstudio/crypton-avl/providers/journal"
	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var errContentMismatch = errors.New("tree contents differ from the shadow map")

func newReplayCmd() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "apply operations journal to an AVL tree",
		ArgsUsage: "<journal-file>",
		Action:    runReplay,
	}
}

func runReplay(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return cli.Exit("exactly one journal file is expected", 1)
	}
	config, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	rawlog, err := newLogger(config.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = rawlog.Sync()
	}()
	log := rawlog.Sugar().With("source", "avl_replay")

	file, err := os.Open(cctx.Args().First())
	if err != nil {
		return err
	}
	defer file.Close()

	var registry *prometheus.Registry
	if config.MetricsFile != "" {
		registry = prometheus.NewRegistry()
	}
	replayer := NewReplayer(config, log, registry)

	log.Infow("replaying journal", "file", file.Name(), "check_invariants", config.CheckInvariants, "verify_contents", config.VerifyContents)
	timeStart := time.Now()
	processor := journal.NewProcessor(replayer)
	if err := processor.Process(file); err != nil {
		log.Errorw("replay failed", "processed", processor.Processed(), "err", err)
		return err
	}
	if err := replayer.Verify(); err != nil {
		return err
	}
	timeElapsed := time.Since(timeStart)

	// Print statistics
	out := cctx.App.Writer
	fmt.Fprintln(out)
	replayer.PrintStatistics(out, timeElapsed)
	fmt.Fprintln(out)
	replayer.stats.PrintStatistics(out, timeElapsed)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Time elapsed: %f seconds\n", timeElapsed.Seconds())

	if config.PrintTree {
		if err := replayer.tree.Print(out); err != nil {
			return err
		}
	}
	if registry != nil {
		if err := prometheus.WriteToTextfile(config.MetricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		log.Infow("metrics written", "file", config.MetricsFile)
	}
	log.Infow("journal replayed", "messages", processor.Processed(), "size", replayer.tree.Size(), "height", replayer.tree.Height())
	return nil
}

////////////////////////////////////////////////////////////////

var _ journal.Handler = &Replayer{}

// Replayer applies journal messages to an AVL tree keyed by 128-bit keys.
type Replayer struct {
	tree     avl.Tree[uint128.Uint128, uint64]
	shadow   *hashmap.Map[uint128.Uint128, uint64]
	stats    *observer.Statistics
	metrics  *observer.Metrics
	log      *zap.SugaredLogger
	messages [256]int
	found    int
	missed   int
	check    bool
}

// NewReplayer creates Replayer. Metrics are registered only if registry is not nil.
func NewReplayer(config *Config, log *zap.SugaredLogger, registry *prometheus.Registry) *Replayer {
	r := &Replayer{
		tree:  avl.NewTreePooled[uint128.Uint128, uint64](uint128.Uint128.Cmp, avl.NewNodePool[uint128.Uint128, uint64]()),
		stats: &observer.Statistics{},
		log:   log,
		check: config.CheckInvariants,
	}
	handlers := observer.Multi{r.stats}
	if registry != nil {
		r.metrics = observer.NewMetrics(registry)
		handlers = append(handlers, r.metrics)
	}
	if log.Desugar().Core().Enabled(zap.DebugLevel) {
		handlers = append(handlers, observer.NewLogger(log))
	}
	r.tree.SetHandler(handlers)
	if config.VerifyContents {
		r.shadow = hashmap.New[uint128.Uint128, uint64](0)
	}
	return r
}

func (r *Replayer) OnInsertMessage(msg journal.InsertMessage) error {
	r.messages[msg.Type]++
	r.tree.Insert(msg.Key, msg.Value)
	if r.shadow != nil {
		r.shadow.Set(msg.Key, msg.Value)
	}
	return r.checkTree()
}

func (r *Replayer) OnDeleteMessage(msg journal.DeleteMessage) error {
	r.messages[msg.Type]++
	value, ok := r.tree.Remove(msg.Key)
	if r.shadow != nil {
		want, existed := r.shadow.Delete(msg.Key)
		if ok != existed || value != want {
			return fmt.Errorf("%w: delete %s returned %d (%v), expected %d (%v)", errContentMismatch, msg.Key, value, ok, want, existed)
		}
	}
	return r.checkTree()
}

func (r *Replayer) OnFindMessage(msg journal.FindMessage) error {
	r.messages[msg.Type]++
	it := r.tree.Find(msg.Key)
	if it.Valid() {
		r.found++
	} else {
		r.missed++
	}
	if r.shadow != nil {
		want, existed := r.shadow.Get(msg.Key)
		if it.Valid() != existed || (existed && it.Value() != want) {
			return fmt.Errorf("%w: find %s", errContentMismatch, msg.Key)
		}
	}
	return nil
}

func (r *Replayer) OnClearMessage(msg journal.ClearMessage) error {
	r.messages[msg.Type]++
	r.tree.Clear()
	if r.metrics != nil {
		r.metrics.SetSize(0)
	}
	if r.shadow != nil {
		r.shadow = hashmap.New[uint128.Uint128, uint64](0)
	}
	return nil
}

func (r *Replayer) OnUnknownMessage(msg journal.UnknownMessage) error {
	r.messages[msg.Type]++
	r.log.Warnw("skipping unknown journal message", "type", string(msg.Type), "size", len(msg.Data))
	return nil
}

func (r *Replayer) checkTree() error {
	if !r.check {
		return nil
	}
	return r.tree.Check()
}

// Verify compares the whole tree against the shadow map if contents verification is enabled.
func (r *Replayer) Verify() (err error) {
	if err := r.tree.Check(); err != nil {
		return err
	}
	if r.shadow == nil {
		return nil
	}
	if r.shadow.Len() != r.tree.Size() {
		return fmt.Errorf("%w: tree has %d keys, expected %d", errContentMismatch, r.tree.Size(), r.shadow.Len())
	}
	r.shadow.Scan(func(key uint128.Uint128, want uint64) bool {
		got, e := r.tree.At(key)
		if e != nil || got != want {
			err = fmt.Errorf("%w: key %s", errContentMismatch, key)
			return false
		}
		return true
	})
	return err
}

func (r *Replayer) PrintStatistics(w io.Writer, elapsed time.Duration) {
	fmt.Fprintf(w, "JOURNAL MESSAGES:\n")
	fmt.Fprintf(w, "Insert messages %13d\n", r.messages[journal.MessageTypeInsert])
	fmt.Fprintf(w, "Delete messages %13d\n", r.messages[journal.MessageTypeDelete])
	fmt.Fprintf(w, "Find messages %15d\n", r.messages[journal.MessageTypeFind])
	fmt.Fprintf(w, "Clear messages %14d\n", r.messages[journal.MessageTypeClear])
	total := 0
	for _, count := range r.messages {
		total += count
	}
	known := r.messages[journal.MessageTypeInsert] + r.messages[journal.MessageTypeDelete] +
		r.messages[journal.MessageTypeFind] + r.messages[journal.MessageTypeClear]
	fmt.Fprintf(w, "Unknown messages %12d\n", total-known)
	fmt.Fprintf(w, "Keys found %18d\n", r.found)
	fmt.Fprintf(w, "Keys missed %17d\n", r.missed)
	fmt.Fprintf(w, "Tree size %19d\n", r.tree.Size())
	fmt.Fprintf(w, "Tree height %17d\n", r.tree.Height())
	if elapsed > 0 {
		fmt.Fprintf(w, "Messages per second %9.0f\n", float64(total)/elapsed.Seconds())
	}
}
