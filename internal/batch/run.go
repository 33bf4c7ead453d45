// Package batch evaluates many expressions concurrently.
//
// Every item is parsed, evaluated and formatted by one worker; values never
// leave the goroutine that computed them until they are rendered as text.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"bitnum/internal/bignum"
	"bitnum/internal/calc"
	"bitnum/internal/observ"
	"bitnum/internal/trace"
)

// Request configures a batch run.
type Request struct {
	Items    []Item
	Jobs     uint // 0 means GOMAXPROCS
	Base     int  // output base, 2 or 10 (0 means 10)
	FailFast bool // stop at the first failing item
	Progress ProgressSink
	Timer    *observ.Timer
}

// ItemResult is the outcome of one item.
type ItemResult struct {
	Label   string
	Expr    string
	Output  string
	Err     error
	Timings Timings
}

// Result collects item results in input order.
type Result struct {
	Items  []ItemResult
	Failed int
}

// ErrItemFailed is returned under FailFast; it wraps the item's own error.
var ErrItemFailed = errors.New("batch item failed")

// Run evaluates every item of req.
//
// Without FailFast a failing item is recorded in its ItemResult and the run
// continues; the returned error is then only about the run itself
// (cancellation, bad request). With FailFast the first failure cancels the
// remaining items and is returned wrapped in ErrItemFailed.
func Run(ctx context.Context, req Request) (Result, error) {
	result := Result{Items: make([]ItemResult, len(req.Items))}
	base := req.Base
	if base == 0 {
		base = 10
	}
	if base != 2 && base != 10 {
		return result, fmt.Errorf("unsupported output base %d", base)
	}
	if len(req.Items) == 0 {
		return result, nil
	}

	jobs, err := safecast.Conv[int](req.Jobs)
	if err != nil {
		return result, fmt.Errorf("invalid job count: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	ctx, span := trace.Start(ctx, trace.ScopeCommand, "batch")
	defer span.End("")
	span.WithExtra("items", fmt.Sprint(len(req.Items))).WithExtra("jobs", fmt.Sprint(jobs))

	emitQueued(req.Progress, req.Items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Items)))

	for i, item := range req.Items {
		g.Go(func() error {
			// индекс i уникален для горутины, мьютекс не нужен
			res := runItem(gctx, item, base, req.Progress, req.Timer)
			result.Items[i] = res
			if res.Err != nil && req.FailFast {
				return fmt.Errorf("%w: %s: %w", ErrItemFailed, item.Label, res.Err)
			}
			return nil
		})
	}
	err = g.Wait()

	for _, r := range result.Items {
		if r.Err != nil {
			result.Failed++
		}
	}
	emit(req.Progress, Event{Stage: StageFormat, Status: finalStatus(result.Failed, err)})
	if err != nil {
		return result, err
	}
	return result, ctx.Err()
}

func runItem(ctx context.Context, item Item, base int, sink ProgressSink, timer *observ.Timer) ItemResult {
	res := ItemResult{Label: item.Label, Expr: item.Expr}
	if err := ctx.Err(); err != nil {
		res.Err = err
		emit(sink, Event{Item: item.Label, Stage: StageParse, Status: StatusError, Err: err})
		return res
	}

	ctx, span := trace.Start(ctx, trace.ScopeJob, "job:"+item.Label)
	defer span.End("")

	fail := func(stage Stage, err error) ItemResult {
		res.Err = err
		span.WithExtra("error", err.Error())
		emit(sink, Event{Item: item.Label, Stage: stage, Status: StatusError, Err: err})
		return res
	}
	step := func(stage Stage, start time.Time) {
		d := time.Since(start)
		res.Timings.Set(stage, d)
		if timer != nil {
			timer.Add(string(stage), d)
		}
	}

	start := time.Now()
	emit(sink, Event{Item: item.Label, Stage: StageParse, Status: StatusWorking})
	expr, err := calc.Parse(item.Expr)
	step(StageParse, start)
	if err != nil {
		return fail(StageParse, err)
	}

	start = time.Now()
	emit(sink, Event{Item: item.Label, Stage: StageEval, Status: StatusWorking})
	v, err := calc.Evaluate(ctx, calc.Normalize(item.Expr), expr)
	step(StageEval, start)
	if err != nil {
		return fail(StageEval, err)
	}

	start = time.Now()
	emit(sink, Event{Item: item.Label, Stage: StageFormat, Status: StatusWorking})
	res.Output = FormatValue(v, base)
	step(StageFormat, start)

	emit(sink, Event{Item: item.Label, Stage: StageFormat, Status: StatusDone, Elapsed: res.Timings.Sum(StageParse, StageEval, StageFormat)})
	return res
}

// FormatValue renders v in base 2 or 10 with a leading '-' for negative
// values. Other bases fall back to 10.
func FormatValue(v *bignum.BigInt, base int) string {
	if base == 2 {
		return fmt.Sprintf("%b", v)
	}
	return v.String()
}

func finalStatus(failed int, err error) Status {
	if failed > 0 || err != nil {
		return StatusError
	}
	return StatusDone
}

func emitQueued(sink ProgressSink, items []Item) {
	if sink == nil {
		return
	}
	for _, item := range items {
		sink.OnEvent(Event{Item: item.Label, Stage: StageParse, Status: StatusQueued})
	}
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
