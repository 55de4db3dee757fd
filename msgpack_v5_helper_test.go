//go:build go_timetravel_msgpack_v5
// +build go_timetravel_msgpack_v5

package timetravel_test

import (
	"github.com/vmihailenco/msgpack/v5"
)

func marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
