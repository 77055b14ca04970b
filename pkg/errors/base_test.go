package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewError(t *testing.T) {
	Convey("Given an upstream error", t, func() {
		upstream := stderrors.New("connection refused")

		Convey("When it is wrapped as a transport error", func() {
			err := Transport("fetch profile", upstream)

			Convey("Then it matches the transport sentinel only", func() {
				So(stderrors.Is(err, ErrTransport), ShouldBeTrue)
				So(stderrors.Is(err, ErrNotFound), ShouldBeFalse)
			})

			Convey("Then the upstream error is still reachable", func() {
				So(stderrors.Is(err, upstream), ShouldBeTrue)
			})

			Convey("Then the message keeps the upstream detail", func() {
				So(err.Error(), ShouldEqual, "transport: fetch profile: connection refused")
			})
		})

		Convey("When it is wrapped again with fmt", func() {
			err := fmt.Errorf("tool call: %w", NotFound("profile", "abc"))

			Convey("Then KindOf finds the kind through the chain", func() {
				So(KindOf(err), ShouldEqual, KindNotFound)
				So(stderrors.Is(err, ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestKindOfPlainError(t *testing.T) {
	Convey("Given a plain error", t, func() {
		So(KindOf(stderrors.New("boom")), ShouldEqual, Kind(""))
		So(KindOf(nil), ShouldEqual, Kind(""))
	})
}
