package identity

import (
	stderrors "errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
)

const fooAtBar = "0c7e6a405862e402eb76a70f8a26fc732d07c32931e9fae9ab1582911d2e8a3b"

func TestNormalize(t *testing.T) {
	Convey("Given the address foo@bar.com", t, func() {
		key, err := Normalize("foo@bar.com")

		Convey("Then it hashes to the known digest", func() {
			So(err, ShouldBeNil)
			So(key, ShouldEqual, fooAtBar)
			So(IsKey(key), ShouldBeTrue)
		})

		Convey("Then equivalent spellings give the same key", func() {
			for _, spelling := range []string{"Foo@Bar.com", " foo@bar.com ", "\tFOO@BAR.COM\n"} {
				other, err := Normalize(spelling)
				So(err, ShouldBeNil)
				So(other, ShouldEqual, key)
			}
		})

		Convey("Then normalizing twice is stable", func() {
			again, _ := Normalize("foo@bar.com")
			So(again, ShouldEqual, key)
		})
	})

	Convey("Given an address with no @", t, func() {
		key, err := Normalize("not-an-email")

		Convey("Then it is still hashed", func() {
			So(err, ShouldBeNil)
			So(IsKey(key), ShouldBeTrue)
		})
	})

	Convey("Given a blank address", t, func() {
		key, err := Normalize("   ")

		Convey("Then it is rejected as invalid input", func() {
			So(key, ShouldBeEmpty)
			So(stderrors.Is(err, errors.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestIsKey(t *testing.T) {
	Convey("IsKey only accepts 64 lowercase hex characters", t, func() {
		So(IsKey(fooAtBar), ShouldBeTrue)
		So(IsKey(""), ShouldBeFalse)
		So(IsKey(fooAtBar[:63]), ShouldBeFalse)
		So(IsKey("0C7E6A405862E402EB76A70F8A26FC732D07C32931E9FAE9AB1582911D2E8A3B"), ShouldBeFalse)
		So(IsKey("zz7e6a405862e402eb76a70f8a26fc732d07c32931e9fae9ab1582911d2e8a3b"), ShouldBeFalse)
	})
}
