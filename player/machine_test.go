package player

import (
	"context"
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stormychel/YouTubePlayerKit/events"
	"github.com/stormychel/YouTubePlayerKit/jsvalue"
)

// machineHarness feeds the state machine directly, without a bridge.
type machineHarness struct {
	p    *Player
	feed chan events.Item
	done chan struct{}
}

func newMachineHarness() *machineHarness {
	h := &machineHarness{
		p: New(HostFunc(func(ctx context.Context) (io.ReadWriteCloser, error) {
			return nil, errors.New("not used")
		})),
		feed: make(chan events.Item),
		done: make(chan struct{}),
	}
	go h.p.consume(h.feed, h.done)
	return h
}

func (h *machineHarness) event(name events.Name, data jsvalue.Value) {
	h.feed <- events.Item{Event: &events.Event{Name: name, Data: data}}
}

func (h *machineHarness) fault(kind events.FaultKind) {
	h.feed <- events.Item{Fault: &events.Fault{Kind: kind, Message: "broken"}}
}

func (h *machineHarness) stop() {
	close(h.feed)
	<-h.done
}

func TestMachineReady(t *testing.T) {
	Convey("onReady moves the state from Idle to Ready", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		states := h.p.States(ctx)
		So((<-states).Kind, ShouldEqual, StateIdle)

		h.event(events.Ready, jsvalue.Null())
		So((<-states).Kind, ShouldEqual, StateReady)
	})
}

func TestMachineLoadFailure(t *testing.T) {
	Convey("a failed API load moves Idle to Error", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		states := h.p.States(ctx)
		<-states

		h.event(events.IframeAPIFailedToLoad, jsvalue.Null())

		got := <-states
		So(got.Kind, ShouldEqual, StateError)
		So(got.Err, ShouldEqual, ErrIframeAPIFailedToLoad)
	})
}

func TestMachineFaultFromAnyState(t *testing.T) {
	Convey("a transport fault forces Error even after Ready", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		states := h.p.States(ctx)
		<-states

		h.event(events.Ready, jsvalue.Null())
		So((<-states).Kind, ShouldEqual, StateReady)

		h.fault(events.ProcessTerminated)

		got := <-states
		So(got.Kind, ShouldEqual, StateError)
		var faultErr *FaultError
		So(errors.As(got.Err, &faultErr), ShouldBeTrue)
		So(faultErr.Kind, ShouldEqual, events.ProcessTerminated)
	})
}

func TestMachinePlaybackState(t *testing.T) {
	Convey("state-change notifications", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		updates := h.p.PlaybackStates(ctx)

		Convey("start as None", func() {
			So((<-updates).IsAbsent(), ShouldBeTrue)
		})

		Convey("map known codes", func() {
			<-updates
			h.event(events.StateChange, jsvalue.Number(1))
			So((<-updates).MustGet(), ShouldEqual, PlaybackPlaying)
		})

		Convey("map out-of-enum codes to Unstarted", func() {
			<-updates
			h.event(events.StateChange, jsvalue.Number(99))
			So((<-updates).MustGet(), ShouldEqual, PlaybackUnstarted)
		})

		Convey("ignore undecodable payloads", func() {
			<-updates
			h.event(events.StateChange, jsvalue.String("playing"))
			h.event(events.StateChange, jsvalue.Number(2))
			// Only the well-formed change lands.
			So((<-updates).MustGet(), ShouldEqual, PlaybackPaused)
		})
	})
}

func TestMachineQualityAndRate(t *testing.T) {
	Convey("quality and rate notifications update their observables", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		qualities := h.p.PlaybackQualities(ctx)
		rates := h.p.PlaybackRates(ctx)
		So((<-qualities).IsAbsent(), ShouldBeTrue)
		So((<-rates).IsAbsent(), ShouldBeTrue)

		h.event(events.PlaybackQualityChange, jsvalue.String("hd1080"))
		So((<-qualities).MustGet(), ShouldEqual, QualityHD1080)

		h.event(events.PlaybackRateChange, jsvalue.Number(1.5))
		So((<-rates).MustGet(), ShouldEqual, 1.5)
	})
}

func TestMachineAutoplayBlocked(t *testing.T) {
	Convey("an autoplay-blocked notification reaches subscribers", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		blocked := h.p.AutoplayBlocked(ctx)

		h.event(events.AutoplayBlocked, jsvalue.Null())
		<-blocked
	})
}

func TestMachineTerminalStates(t *testing.T) {
	Convey("Ready and Error are terminal within a session", t, func() {
		Convey("a ready notification cannot resurrect a failed session", func() {
			h := newMachineHarness()
			defer h.stop()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			states := h.p.States(ctx)
			<-states

			h.event(events.IframeAPIFailedToLoad, jsvalue.Null())
			So((<-states).Kind, ShouldEqual, StateError)

			h.event(events.Ready, jsvalue.Null())
			// Feed another event to be sure the ready one was consumed.
			h.event(events.APIChange, jsvalue.Null())

			got := h.p.StateValue()
			So(got.Kind, ShouldEqual, StateError)
			So(got.Err, ShouldEqual, ErrIframeAPIFailedToLoad)
		})

		Convey("a late API failure cannot degrade an established session", func() {
			h := newMachineHarness()
			defer h.stop()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			states := h.p.States(ctx)
			<-states

			h.event(events.Ready, jsvalue.Null())
			So((<-states).Kind, ShouldEqual, StateReady)

			h.event(events.IframeAPIFailedToLoad, jsvalue.Null())
			h.event(events.APIChange, jsvalue.Null())

			So(h.p.StateValue().Kind, ShouldEqual, StateReady)
		})
	})
}

func TestMachineContentErrorAfterReady(t *testing.T) {
	Convey("a content error after Ready does not degrade the session", t, func() {
		h := newMachineHarness()
		defer h.stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		states := h.p.States(ctx)
		<-states

		h.event(events.Ready, jsvalue.Null())
		So((<-states).Kind, ShouldEqual, StateReady)

		h.event(events.Error, jsvalue.Number(100))
		// Feed another event to be sure the error one was consumed.
		h.event(events.APIChange, jsvalue.Null())

		So(h.p.StateValue().Kind, ShouldEqual, StateReady)
	})
}
