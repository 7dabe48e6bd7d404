package jsvalue

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("decodes every shape", func() {
			v, err := Parse([]byte(`{"a": [1, "two", true, null], "b": {"c": 3.5}}`))
			So(err, ShouldBeNil)
			So(v.Kind(), ShouldEqual, KindObject)

			a, ok := v.Field("a")
			So(ok, ShouldBeTrue)
			arr, ok := a.AsArray()
			So(ok, ShouldBeTrue)
			So(arr, ShouldHaveLength, 4)
			So(arr[0].Kind(), ShouldEqual, KindNumber)
			So(arr[1].Kind(), ShouldEqual, KindString)
			So(arr[2].Kind(), ShouldEqual, KindBool)
			So(arr[3].IsNull(), ShouldBeTrue)

			b, ok := v.Field("b")
			So(ok, ShouldBeTrue)
			c, ok := b.Field("c")
			So(ok, ShouldBeTrue)
			n, ok := c.AsNumber()
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 3.5)
		})

		Convey("empty input is null", func() {
			v, err := Parse(nil)
			So(err, ShouldBeNil)
			So(v.IsNull(), ShouldBeTrue)
		})

		Convey("rejects malformed json", func() {
			_, err := Parse([]byte(`{"a":`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEqual(t *testing.T) {
	Convey("Equal", t, func() {
		Convey("is structural", func() {
			a := Object(map[string]Value{
				"xs": Array(Number(1), String("two")),
			})
			b := Object(map[string]Value{
				"xs": Array(Number(1), String("two")),
			})
			So(a.Equal(b), ShouldBeTrue)
		})

		Convey("distinguishes kind, content and length", func() {
			So(Number(1).Equal(String("1")), ShouldBeFalse)
			So(Number(1).Equal(Number(2)), ShouldBeFalse)
			So(Array(Number(1)).Equal(Array(Number(1), Number(2))), ShouldBeFalse)
			So(Null().Equal(Null()), ShouldBeTrue)
		})
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	Convey("MarshalJSON and Parse invert each other", t, func() {
		original := Object(map[string]Value{
			"n":  Number(42),
			"s":  String("hey"),
			"b":  Bool(true),
			"z":  Null(),
			"xs": Array(Number(1), Number(2)),
		})

		encoded, err := original.MarshalJSON()
		So(err, ShouldBeNil)

		back, err := Parse(encoded)
		So(err, ShouldBeNil)
		So(back.Equal(original), ShouldBeTrue)
	})
}

func TestFromAny(t *testing.T) {
	Convey("FromAny", t, func() {
		Convey("accepts runtime-shaped values", func() {
			v, err := FromAny(map[string]any{
				"id":    int64(7),
				"ratio": 0.5,
				"tags":  []any{"a", "b"},
			})
			So(err, ShouldBeNil)

			id, _ := v.Field("id")
			n, ok := id.AsNumber()
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 7)
		})

		Convey("rejects foreign types", func() {
			_, err := FromAny(struct{}{})
			So(err, ShouldNotBeNil)
		})
	})
}
