//go:build !go_timetravel_msgpack_v5
// +build !go_timetravel_msgpack_v5

package timetravel

import (
	"reflect"

	"gopkg.in/vmihailenco/msgpack.v2"
)

type encoder = msgpack.Encoder
type decoder = msgpack.Decoder

func encodeUint(e *encoder, v uint64) error {
	return e.EncodeUint(uint(v))
}

func encodeInt(e *encoder, v int64) error {
	return e.EncodeInt(int(v))
}

var _ msgpack.Marshaler = (*DateTime)(nil)
var _ msgpack.Unmarshaler = (*DateTime)(nil)

func init() {
	msgpack.RegisterExt(datetime_extId, &DateTime{})

	msgpack.Register(reflect.TypeOf((*Duration)(nil)).Elem(), encodeDuration, decodeDuration)
	msgpack.RegisterExt(duration_extId, (*Duration)(nil))
}
