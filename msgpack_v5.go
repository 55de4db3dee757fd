//go:build go_timetravel_msgpack_v5
// +build go_timetravel_msgpack_v5

package timetravel

import (
	"bytes"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

type encoder = msgpack.Encoder
type decoder = msgpack.Decoder

func encodeUint(e *encoder, v uint64) error {
	return e.EncodeUint(v)
}

func encodeInt(e *encoder, v int64) error {
	return e.EncodeInt(v)
}

var _ msgpack.Marshaler = (*DateTime)(nil)
var _ msgpack.Unmarshaler = (*DateTime)(nil)

func init() {
	msgpack.RegisterExt(datetime_extId, (*DateTime)(nil))

	msgpack.RegisterExtEncoder(duration_extId, Duration{},
		func(e *msgpack.Encoder, v reflect.Value) (ret []byte, err error) {
			var b bytes.Buffer

			enc := msgpack.NewEncoder(&b)
			if err = encodeDuration(enc, v); err == nil {
				ret = b.Bytes()
			}

			return
		})
	msgpack.RegisterExtDecoder(duration_extId, Duration{},
		func(d *msgpack.Decoder, v reflect.Value, extLen int) error {
			return decodeDuration(d, v)
		})
}
